package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/securepass-api/internal/domain/entity"
)

// RenderAccessReport genera el informe con una fila por evento de acceso (horas en UTC).
func (g *MarotoGenerator) RenderAccessReport(company *entity.Company, events []*entity.AccessEvent) ([]byte, error) {
	m := newDocument("Informe de accesos", company.Name)
	m.AddRows(headerRow("Informe de accesos", "Generado: "+g.now().UTC().Format("02/01/2006 15:04")+" UTC"))
	m.AddRows(separator(0.5))
	m.AddRows(companyRow(company, len(events)))
	m.AddRows(separator(0.3))

	m.AddRows(tableHeaderRow())
	if len(events) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin accesos registrados.", props.Text{Size: 9, Align: align.Center, Top: 3, Color: colorGray}),
		)))
	}
	m.AddRows(tableDetailRows(events)...)

	m.AddRows(separator(0.3))
	m.AddRows(footerRow("Documento generado automáticamente por SecurePass."))
	return render(m)
}

// companyRow: datos de la empresa.
func companyRow(c *entity.Company, total int) core.Row {
	status := c.Status
	statusColor := colorGray
	if status == entity.CompanyStatusInactive {
		statusColor = colorDanger
	}
	return row.New(14).Add(
		col.New(8).Add(
			text.New(c.Name, props.Text{Style: fontstyle.Bold, Size: 11, Top: 2}),
			text.New(fmt.Sprintf("Dirección: %s   |   Paquete: %s",
				nonEmpty(c.Address, "—"), nonEmpty(c.Package, "—"),
			), props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Estado: "+nonEmpty(status, "—"), props.Text{Size: 8, Align: align.Right, Top: 2, Color: statusColor}),
			text.New(fmt.Sprintf("Eventos: %d", total), props.Text{Size: 8, Align: align.Right, Top: 8}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Puerta", 2, align.Left),
		h("Sala", 3, align.Left),
		h("Ubicación", 3, align.Left),
		h("Entrada", 2, align.Center),
		h("Salida", 2, align.Center),
	)
}

func tableDetailRows(events []*entity.AccessEvent) []core.Row {
	cell := func(v string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(v, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	out := make([]core.Row, 0, len(events))
	for _, e := range events {
		exit := "—"
		if e.ExitTime != nil {
			exit = e.ExitTime.UTC().Format("02/01 15:04")
		}
		out = append(out, row.New(7).Add(
			cell(e.DoorCode, 2, align.Left),
			cell(e.RoomName, 3, align.Left),
			cell(e.Location, 3, align.Left),
			cell(e.EntryTime.UTC().Format("02/01 15:04"), 2, align.Center),
			cell(exit, 2, align.Center),
		))
	}
	return out
}
