// Package pdf genera los documentos PDF de SecurePass con Maroto v2:
// las guías de uso adjuntas al correo de registro y el informe de accesos de una empresa.
//
// Layout común de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: SecurePass + título      │  subtítulo / fecha       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUERPO: secciones o tabla                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 239, Green: 68, Blue: 68}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoGenerator implementa notify.GuideRenderer y ports.AccessReportRenderer.
type MarotoGenerator struct {
	portalURL string
	now       func() time.Time
}

// NewMarotoGenerator construye el generador. portalURL se imprime en las guías (puede ser vacío).
func NewMarotoGenerator(portalURL string) *MarotoGenerator {
	return &MarotoGenerator{portalURL: portalURL, now: time.Now}
}

func newDocument(title, author string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()
	return maroto.New(cfg)
}

func render(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones comunes ─────────────────────────────────────────────────────────

// headerRow: marca + título (izq) y subtítulo (der).
func headerRow(title, subtitle string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("SecurePass", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(title, props.Text{Size: 10, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(subtitle, props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func separator(thickness float64) core.Row {
	return line.NewRow(1, props.Line{Color: colorPrimary, Thickness: thickness})
}

func footerRow(legend string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(legend, props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
