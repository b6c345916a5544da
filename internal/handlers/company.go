package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dealflow/apiserver/internal/services"
	"github.com/dealflow/apiserver/internal/store"
	"github.com/dealflow/apiserver/types"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Listing defaults applied when the client omits optional fields.
const (
	defaultStatus      = "Active"
	defaultFoundedYear = 2000
)

// CompanyHandler provides HTTP handlers for company listings.
type CompanyHandler struct {
	companyService *services.CompanyService
	validate       *validator.Validate
}

// NewCompanyHandler constructs a handler with the provided service.
func NewCompanyHandler(companyService *services.CompanyService, validate *validator.Validate) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		validate:       validate,
	}
}

// CompanyRouter registers company routes on the given router.
func CompanyRouter(r chi.Router, companyService *services.CompanyService, validate *validator.Validate) {
	handler := NewCompanyHandler(companyService, validate)

	r.Get("/", handler.ListCompanies)
	r.Post("/", handler.CreateCompany)
	r.Get("/{companyID}", handler.GetCompany)
}

func (h *CompanyHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companyService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list companies")
		return
	}

	writeJSON(w, http.StatusOK, companies)
}

func (h *CompanyHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	id, err := parseCompanyID(r)
	if err != nil {
		// An unparseable id can never name a listing.
		writeError(w, http.StatusNotFound, "Company not found")
		return
	}

	company, err := h.companyService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Company not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch company")
		return
	}

	writeJSON(w, http.StatusOK, company)
}

// CreateCompany validates the listing payload, fills defaults for omitted
// optional fields, and persists the listing.
func (h *CompanyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, missingFieldsMessage(err))
		return
	}

	created, err := h.companyService.Create(r.Context(), req.toCompany())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, CreateCompanyResponse{
		ID:      created.ID,
		Message: "Company created successfully",
	})
}

// CreateCompanyRequest is the listing payload. Required fields are pointers
// with a required rule so every missing key is reported; optional fields are
// pointers so an explicit zero is distinguishable from an omitted key.
type CreateCompanyRequest struct {
	Name        *string  `json:"name" validate:"required"`
	Industry    *string  `json:"industry" validate:"required"`
	Location    *string  `json:"location" validate:"required"`
	Revenue     *float64 `json:"revenue" validate:"required"`
	AskingPrice *float64 `json:"asking_price" validate:"required"`
	Description *string  `json:"description" validate:"required"`
	OwnerID     *int     `json:"owner_id" validate:"required"`

	Status             *string  `json:"status"`
	Ebitda             *float64 `json:"ebitda"`
	Employees          *int     `json:"employees"`
	FoundedYear        *int     `json:"founded_year"`
	ViewsThisMonth     *int     `json:"views_this_month"`
	InquiriesThisMonth *int     `json:"inquiries_this_month"`
}

// CreateCompanyResponse confirms a created listing.
type CreateCompanyResponse struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

func (req CreateCompanyRequest) toCompany() types.Company {
	return types.Company{
		Name:               *req.Name,
		Industry:           *req.Industry,
		Status:             stringOr(req.Status, defaultStatus),
		Location:           *req.Location,
		Revenue:            *req.Revenue,
		Ebitda:             float64Or(req.Ebitda, 0),
		Employees:          intOr(req.Employees, 0),
		FoundedYear:        intOr(req.FoundedYear, defaultFoundedYear),
		AskingPrice:        *req.AskingPrice,
		Description:        *req.Description,
		OwnerID:            *req.OwnerID,
		ViewsThisMonth:     intOr(req.ViewsThisMonth, 0),
		InquiriesThisMonth: intOr(req.InquiriesThisMonth, 0),
	}
}

func parseCompanyID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "companyID")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid company id")
	}
	return id, nil
}

func stringOr(value *string, fallback string) string {
	if value != nil {
		return *value
	}
	return fallback
}

func float64Or(value *float64, fallback float64) float64 {
	if value != nil {
		return *value
	}
	return fallback
}

func intOr(value *int, fallback int) int {
	if value != nil {
		return *value
	}
	return fallback
}
