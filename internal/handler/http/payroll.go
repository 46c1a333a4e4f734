package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/kauri-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/kauri-hr/payroll-backend-go/internal/domain/timesheet"
	"github.com/kauri-hr/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	// Runs
	RunPayroll(w http.ResponseWriter, r *http.Request)

	// Entries
	GetEntry(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)

	// Previews
	PreviewRate(w http.ResponseWriter, r *http.Request)
	EmployeeHours(w http.ResponseWriter, r *http.Request)

	// Artifacts
	DownloadBankFile(w http.ResponseWriter, r *http.Request)
	DownloadSchedule(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== RUNS ==========

func (h *payrollHandlerImpl) RunPayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.RunPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.RunPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// A run stopped by employee validation is reported, not errored. The
	// caller inspects the state field.
	response.Success(w, result)
}

// ========== ENTRIES ==========

func (h *payrollHandlerImpl) GetEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Entry ID is required", nil)
		return
	}

	result, err := h.payrollService.GetEntry(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	filter := parseEntryFilter(r)

	result, err := h.payrollService.ListEntries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := 0
	if result.Limit > 0 {
		totalPages = int((result.TotalCount + int64(result.Limit) - 1) / int64(result.Limit))
	}

	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

type markPaidRequest struct {
	IDs []string `json:"ids"`
}

func (h *payrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	var req markPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if len(req.IDs) == 0 {
		response.BadRequest(w, "At least one entry ID is required", nil)
		return
	}

	if err := h.payrollService.MarkPaid(r.Context(), req.IDs); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll entries marked paid", nil)
}

// ========== RATES ==========

func (h *payrollHandlerImpl) PreviewRate(w http.ResponseWriter, r *http.Request) {
	baseRate, err := decimal.NewFromString(r.URL.Query().Get("base_rate"))
	if err != nil {
		response.BadRequest(w, "base_rate must be a decimal number", nil)
		return
	}

	category := timesheet.Category(r.URL.Query().Get("category"))
	switch category {
	case timesheet.CategoryRegular, timesheet.CategoryOvertime, timesheet.CategoryPublicHoliday:
	default:
		response.BadRequest(w, "category must be regular, overtime or public_holiday", nil)
		return
	}

	response.Success(w, payroll.RatePreviewResponse{
		BaseRate: baseRate,
		Category: string(category),
		Rate:     payroll.RateForCategory(baseRate, category),
	})
}

func (h *payrollHandlerImpl) EmployeeHours(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	period, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.EmployeeHours(r.Context(), id, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== ARTIFACTS ==========

func (h *payrollHandlerImpl) DownloadBankFile(w http.ResponseWriter, r *http.Request) {
	period, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	body, err := h.payrollService.BankPaymentFile(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, "text/plain", fmt.Sprintf("payments-%s.txt", period), body)
}

func (h *payrollHandlerImpl) DownloadSchedule(w http.ResponseWriter, r *http.Request) {
	period, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	body, err := h.payrollService.MonthlySchedule(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, "text/csv", fmt.Sprintf("schedule-%s.csv", period), body)
}

func (h *payrollHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Entry ID is required", nil)
		return
	}

	body, err := h.payrollService.PayslipPDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, "application/pdf", fmt.Sprintf("payslip-%s.pdf", id), body)
}

// ========== HELPERS ==========

func parsePeriod(w http.ResponseWriter, r *http.Request) (payroll.Period, bool) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "month must be between 1 and 12", nil)
		return payroll.Period{}, false
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		response.BadRequest(w, "year is out of range", nil)
		return payroll.Period{}, false
	}
	return payroll.Period{Month: month, Year: year}, true
}

func parseEntryFilter(r *http.Request) payroll.EntryFilter {
	var filter payroll.EntryFilter
	q := r.URL.Query()

	if v, err := strconv.Atoi(q.Get("period_month")); err == nil {
		filter.PeriodMonth = &v
	}
	if v, err := strconv.Atoi(q.Get("period_year")); err == nil {
		filter.PeriodYear = &v
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		filter.Page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		filter.Limit = v
	}

	return filter
}
