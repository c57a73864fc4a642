package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/securepass-api/internal/application/ports"
)

type guideSection struct {
	title string
	steps []string
}

var adminGuide = []guideSection{
	{"Primeros pasos", []string{
		"Inicia sesión en el portal de administración con el email y la contraseña recibidos.",
		"Cambia la contraseña inicial desde tu perfil.",
	}},
	{"Ubicaciones y puertas", []string{
		"Registra las ubicaciones de tu empresa antes de crear puertas.",
		"Cada puerta se identifica por un código único dentro de la empresa.",
	}},
	{"Usuarios", []string{
		"Crea los usuarios de tu empresa; cada uno recibe sus credenciales por correo.",
		"El número de usuarios depende del paquete contratado.",
	}},
	{"Solicitudes de acceso", []string{
		"Revisa las solicitudes pendientes y apruébalas o recházalas.",
		"Puedes otorgar accesos directamente y revocarlos en cualquier momento.",
	}},
}

var userGuide = []guideSection{
	{"Primeros pasos", []string{
		"Inicia sesión en la aplicación con el email y la contraseña recibidos.",
	}},
	{"Solicitar acceso", []string{
		"Elige la puerta, la fecha y la franja horaria que necesitas.",
		"Recibirás un correo cuando tu administrador apruebe la solicitud.",
	}},
	{"Usar tu acceso", []string{
		"Tu acceso es válido solo para la puerta y la fecha aprobadas.",
	}},
}

// RenderGuide genera la guía de uso para la audiencia indicada (admin o user).
func (g *MarotoGenerator) RenderGuide(audience, displayName string) ([]byte, error) {
	title, sections := "Guía de usuario", userGuide
	if audience == ports.AudienceAdmin {
		title, sections = "Guía del administrador", adminGuide
	}

	m := newDocument(title, "SecurePass")
	m.AddRows(headerRow(title, g.now().Format("02/01/2006")))
	m.AddRows(separator(0.5))
	m.AddRows(row.New(12).Add(col.New(12).Add(
		text.New(greeting(displayName), props.Text{
			Style: fontstyle.Bold, Size: 11, Top: 4,
		}),
	)))

	for _, s := range sections {
		m.AddRows(sectionRows(s)...)
	}

	if g.portalURL != "" {
		m.AddRows(portalRow(g.portalURL))
	}
	m.AddRows(separator(0.3))
	m.AddRows(footerRow("No compartas tus credenciales. SecurePass nunca te pedirá tu contraseña por correo."))
	return render(m)
}

func sectionRows(s guideSection) []core.Row {
	rows := []core.Row{
		row.New(9).Add(col.New(12).Add(
			text.New(s.title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 4}),
		)),
	}
	for i, step := range s.steps {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%d. %s", i+1, step), props.Text{Size: 9, Top: 1, Left: 3}),
		)))
	}
	return rows
}

// portalRow: QR con la dirección del portal + texto.
func portalRow(url string) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(url, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Accede al portal:", props.Text{Size: 9, Top: 10, Left: 3, Color: colorGray}),
			text.New(url, props.Text{Style: fontstyle.Bold, Size: 10, Top: 16, Left: 3, Color: colorPrimary}),
		),
	)
}

func greeting(name string) string {
	if name == "" {
		return "Bienvenido a SecurePass."
	}
	return "Hola " + name + ", bienvenido a SecurePass."
}
