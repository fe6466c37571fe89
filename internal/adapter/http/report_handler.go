package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"kastle-collection-reports/internal/domain/portfolio"
	"kastle-collection-reports/internal/report"
	"kastle-collection-reports/internal/usecase/branchreport"
	"kastle-collection-reports/internal/usecase/export"
	"kastle-collection-reports/internal/usecase/productreport"
)

type ReportHandler struct {
	branch   *branchreport.Usecase
	product  *productreport.Usecase
	dims     portfolio.Repository
	exporter *export.Usecase
	log      *logrus.Logger
}

func NewReportHandler(b *branchreport.Usecase, p *productreport.Usecase, dims portfolio.Repository, ex *export.Usecase, log *logrus.Logger) *ReportHandler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ReportHandler{branch: b, product: p, dims: dims, exporter: ex, log: log}
}

// reportQuery carries every filter the report endpoints accept. Unknown
// enum values are rejected here, before any data is fetched.
type reportQuery struct {
	DateRange    string `query:"date_range" validate:"omitempty,oneof=current_month last_month current_quarter current_year"`
	ProductType  string `query:"product_type"`
	Branch       string `query:"branch"`
	Bucket       string `query:"delinquency_bucket" validate:"bucket"`
	CustomerType string `query:"customer_type" validate:"omitempty,oneof=all INDIVIDUAL CORPORATE SME"`
	Comparison   *bool  `query:"comparison"`
}

func (q reportQuery) toFilters() report.Filters {
	comparison := true
	if q.Comparison != nil {
		comparison = *q.Comparison
	}
	return report.Filters{
		DateRange:         report.DateRange(q.DateRange),
		ProductType:       q.ProductType,
		BranchID:          q.Branch,
		DelinquencyBucket: q.Bucket,
		CustomerType:      q.CustomerType,
		Comparison:        comparison,
	}
}

type exportReq struct {
	Format string `json:"format" validate:"required,oneof=csv excel pdf"`
}

// ---- envelope helpers ----

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

func fail(c echo.Context, status int, code, msg string, details ...FieldError) error {
	return c.JSON(status, APIResponse{Success: false, Error: &APIError{Code: code, Message: msg, Details: details}})
}

// bindQuery binds only the query string; the export endpoints carry a JSON
// body as well and echo's full Bind would consume it.
func (h *ReportHandler) bindQuery(c echo.Context) (report.Filters, []FieldError) {
	var q reportQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return report.Filters{}, []FieldError{{Field: "_", Message: "malformed query"}}
	}
	if err := c.Validate(&q); err != nil {
		return report.Filters{}, ToFieldErrors(err)
	}
	return q.toFilters(), nil
}

// ---- dimension lists ----

func (h *ReportHandler) ListBranches(c echo.Context) error {
	branches, err := h.dims.ListBranches(c.Request().Context())
	if err != nil {
		h.log.WithError(err).Error("list branches failed")
		return fail(c, http.StatusServiceUnavailable, CodeDataAccessFailure, "branch list unavailable")
	}
	return ok(c, branches)
}

func (h *ReportHandler) ListProducts(c echo.Context) error {
	products, err := h.dims.ListProducts(c.Request().Context())
	if err != nil {
		h.log.WithError(err).Error("list products failed")
		return fail(c, http.StatusServiceUnavailable, CodeDataAccessFailure, "product list unavailable")
	}
	return ok(c, products)
}

// ---- reports ----

func (h *ReportHandler) GetBranchReport(c echo.Context) error {
	f, details := h.bindQuery(c)
	if details != nil {
		return fail(c, http.StatusBadRequest, CodeValidationError, "invalid filters", details...)
	}
	payload, err := h.branch.Get(c.Request().Context(), c.Param("branch_id"), f)
	if err != nil {
		h.log.WithError(err).WithField("branch_id", c.Param("branch_id")).Error("branch report failed")
		return fail(c, http.StatusServiceUnavailable, CodeDataAccessFailure, "report data unavailable")
	}
	return ok(c, payload)
}

func (h *ReportHandler) GetProductReport(c echo.Context) error {
	f, details := h.bindQuery(c)
	if details != nil {
		return fail(c, http.StatusBadRequest, CodeValidationError, "invalid filters", details...)
	}
	payload, err := h.product.Get(c.Request().Context(), c.Param("product_id"), f)
	if err != nil {
		h.log.WithError(err).WithField("product_id", c.Param("product_id")).Error("product report failed")
		return fail(c, http.StatusServiceUnavailable, CodeDataAccessFailure, "report data unavailable")
	}
	return ok(c, payload)
}

// ---- exports ----

func (h *ReportHandler) ExportBranchReport(c echo.Context) error {
	var req exportReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, CodeValidationError, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, CodeValidationError, "invalid body", ToFieldErrors(err)...)
	}
	f, details := h.bindQuery(c)
	if details != nil {
		return fail(c, http.StatusBadRequest, CodeValidationError, "invalid filters", details...)
	}
	payload, err := h.branch.Get(c.Request().Context(), c.Param("branch_id"), f)
	if err != nil {
		return fail(c, http.StatusServiceUnavailable, CodeDataAccessFailure, "report data unavailable")
	}
	return h.export(c, export.BranchDocument(payload), export.Format(req.Format))
}

func (h *ReportHandler) ExportProductReport(c echo.Context) error {
	var req exportReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, CodeValidationError, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, CodeValidationError, "invalid body", ToFieldErrors(err)...)
	}
	f, details := h.bindQuery(c)
	if details != nil {
		return fail(c, http.StatusBadRequest, CodeValidationError, "invalid filters", details...)
	}
	payload, err := h.product.Get(c.Request().Context(), c.Param("product_id"), f)
	if err != nil {
		return fail(c, http.StatusServiceUnavailable, CodeDataAccessFailure, "report data unavailable")
	}
	return h.export(c, export.ProductDocument(payload), export.Format(req.Format))
}

func (h *ReportHandler) export(c echo.Context, doc export.Document, format export.Format) error {
	artifact, err := h.exporter.Export(c.Request().Context(), doc, format)
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			return fail(c, http.StatusBadRequest, CodeUnsupportedFormat, "format not supported: "+string(format))
		}
		h.log.WithError(err).Error("export failed")
		return fail(c, http.StatusInternalServerError, CodeDataAccessFailure, "export failed")
	}
	return ok(c, artifact)
}
