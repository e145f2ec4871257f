package emit

import "text/template"

// moduleTemplate is the Rust module implementing the Map and Shape traits.
// Every occurrence of the type name comes from .TypeName.
var moduleTemplate = template.Must(template.New("module").Parse(`
use super::{Map,Color};

pub struct {{.TypeName}} {
    color: Color
}

impl {{.TypeName}} {
    fn default() -> Self{
        Self{
            color:Color::{{.DefaultColor}}
        }
    }
}

impl Map for {{.TypeName}} {
    const WIDTH:usize = {{.Width}};
    const HEIGHT:usize = {{.Height}};

    fn default() -> Self{
        Self{
            color:Color::{{.DefaultColor}}
        }
    }

	fn render(& self, ctx: &mut ratatui::widgets::canvas::Context<'_>) {
		ctx.draw(self);
	}

    fn map(&self) -> Vec<(usize,usize)>{
        [{{range .Points}}
			({{.X}},{{.Y}}),{{end}}
        ].to_vec()
    }

    fn set_color(&mut self, color: ratatui::style::Color) {
        self.color = color;
    }

    fn get_color(&self) -> ratatui::style::Color {
        self.color.clone()
    }

}
impl super::Shape for {{.TypeName}} {
    fn draw(&self, painter: &mut ratatui::widgets::canvas::Painter) {
        for (x, y) in self.map() {
            let y = Self::HEIGHT-y;
            if let Some((x, y)) = painter.get_point(x as f64, y as f64) {
                painter.paint(x, y, self.get_color());
            }
        }
    }
}
`))
