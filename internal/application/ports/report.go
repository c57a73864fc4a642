package ports

import "github.com/jhoicas/securepass-api/internal/domain/entity"

// AccessReportRenderer genera el informe PDF del historial de accesos de una empresa.
type AccessReportRenderer interface {
	RenderAccessReport(company *entity.Company, events []*entity.AccessEvent) ([]byte, error)
}
