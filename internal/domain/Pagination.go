package domain

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

type CampaignFilter struct {
	OwnerID *string
	Status  *CampaignStatus
	Page    int
	PerPage int
}

// Normalize força a página e o tamanho de página para dentro dos limites da
// API. O valor padrão de PerPage é responsabilidade do handler; aqui só
// garantimos os limites.
func (f *CampaignFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}

	if f.PerPage < 1 {
		f.PerPage = 1
	}

	if f.PerPage > MaxPerPage {
		f.PerPage = MaxPerPage
	}
}

func (f *CampaignFilter) Offset() int {
	return (f.Page - 1) * f.PerPage
}

type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

// NewPagination calcula o total de páginas, nunca menor que 1 para manter a
// navegação estável em listas vazias
func NewPagination(page, perPage, total int) Pagination {
	pages := 1
	if total > 0 && perPage > 0 {
		pages = (total + perPage - 1) / perPage
	}

	return Pagination{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages,
	}
}

type CampaignList struct {
	Campaigns  []*Campaign `json:"campaigns"`
	Pagination Pagination  `json:"pagination"`
}
