package requests

// Construction norms

type CreateConstructionNormRequest struct {
	Subsystem string  `json:"subsystem" validate:"required"`
	Group     string  `json:"group" validate:"required"`
	Code      string  `json:"code" validate:"required"`
	Title     string  `json:"title" validate:"required"`
	Link      *string `json:"link"`
}

type UpdateConstructionNormRequest struct {
	Subsystem *string `json:"subsystem"`
	Group     *string `json:"group"`
	Code      *string `json:"code"`
	Title     *string `json:"title"`
	Link      *string `json:"link"`
}

// ConstructionNormSearchRequest filters the construction norm listing
type ConstructionNormSearchRequest struct {
	PageQuery
	Subsystem string `query:"subsystem"`
	Group     string `query:"group"`
}

// Standards

type CreateStandardRequest struct {
	Code        string  `json:"code" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
}

type UpdateStandardRequest struct {
	Code        *string `json:"code"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
}

// Building regulations

type CreateBuildingRegulationRequest struct {
	Number string  `json:"number" validate:"required"`
	Code   string  `json:"code" validate:"required"`
	Title  string  `json:"title" validate:"required"`
	Link   *string `json:"link"`
}

type UpdateBuildingRegulationRequest struct {
	Number *string `json:"number"`
	Code   *string `json:"code"`
	Title  *string `json:"title"`
	Link   *string `json:"link"`
}

// Cost resource norms

type CreateCostResourceNormRequest struct {
	SrnCode         string   `json:"srnCode" validate:"required"`
	SrnTitle        string   `json:"srnTitle" validate:"required"`
	MainShnqCode    string   `json:"mainShnqCode" validate:"required"`
	MainShnqTitle   string   `json:"mainShnqTitle" validate:"required"`
	AdditionalShnqs []string `json:"additionalShnqs"`
	File            *string  `json:"file"`
}

type UpdateCostResourceNormRequest struct {
	SrnCode         *string   `json:"srnCode"`
	SrnTitle        *string   `json:"srnTitle"`
	MainShnqCode    *string   `json:"mainShnqCode"`
	MainShnqTitle   *string   `json:"mainShnqTitle"`
	AdditionalShnqs *[]string `json:"additionalShnqs"`
	File            *string   `json:"file"`
}

// Technical regulations

type CreateTechnicalRegulationRequest struct {
	Code        string  `json:"code" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
}

type UpdateTechnicalRegulationRequest struct {
	Code        *string `json:"code"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
}

// References

type CreateReferenceRequest struct {
	Number string  `json:"number" validate:"required"`
	Title  string  `json:"title" validate:"required"`
	Link   *string `json:"link"`
}

type UpdateReferenceRequest struct {
	Number *string `json:"number"`
	Title  *string `json:"title"`
	Link   *string `json:"link"`
}

// SearchRequest filters listings on a free-text term
type SearchRequest struct {
	PageQuery
	Search string `query:"search"`
}
