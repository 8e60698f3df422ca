package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"retiree-registry/internal/adapters/persistence/models"
	"retiree-registry/internal/core/domain"
	"retiree-registry/internal/core/services"
	"retiree-registry/internal/pkg/pagination"
	"retiree-registry/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MemberHandler handles member record endpoints
type MemberHandler struct {
	memberService *services.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// MemberRequest is the create/update body. Dates use DD/MM/YYYY.
type MemberRequest struct {
	FullName       string `json:"full_name" example:"Juan Perez"`
	NationalID     string `json:"national_id" example:"V-12.345.678"`
	Status         string `json:"status" example:"Retiree" enums:"Retiree,Survivor"`
	IsActiveMember bool   `json:"is_active_member"`
	DeceasedName   string `json:"deceased_name,omitempty"`
	BirthDate      string `json:"birth_date,omitempty" example:"10/05/1960"`
	DeathDate      string `json:"death_date,omitempty"`
	Phone          string `json:"phone,omitempty" example:"0412-1234567"`
}

func (r MemberRequest) toInput() services.MemberInput {
	return services.MemberInput{
		FullName:       r.FullName,
		NationalID:     r.NationalID,
		Status:         r.Status,
		IsActiveMember: r.IsActiveMember,
		DeceasedName:   r.DeceasedName,
		BirthDate:      r.BirthDate,
		DeathDate:      r.DeathDate,
		Phone:          r.Phone,
	}
}

// BulkDeleteRequest selects the records to delete
type BulkDeleteRequest struct {
	IDs []uint `json:"ids"`
}

// BulkDeleteFailure is returned when a bulk delete stops partway
type BulkDeleteFailure struct {
	Error    string `json:"error"`
	FailedID uint   `json:"failed_id"`
	Deleted  []uint `json:"deleted"`
}

// BulkDeleteResult is returned when every id was deleted
type BulkDeleteResult struct {
	Message string `json:"message"`
	Deleted []uint `json:"deleted"`
}

// ListMembers lists every member record
// @Summary List members
// @Description Get all member records ordered by the numeric part of the national id
// @Tags Records
// @Produce json
// @Security BearerAuth
// @Param order_by query string false "national_id (default), id or name"
// @Success 200 {object} response.RowsResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /records [get]
func (h *MemberHandler) ListMembers(c *fiber.Ctx) error {
	orderBy := domain.OrderBy(c.Query("order_by", string(domain.OrderByNationalID)))
	switch orderBy {
	case domain.OrderByNationalID, domain.OrderByID, domain.OrderByName:
	default:
		return response.BadRequest(c, "order_by must be national_id, id or name")
	}

	members, err := h.memberService.List(c.Context(), orderBy)
	if err != nil {
		return writeServiceError(c, err)
	}

	return response.Rows(c, models.ToResponses(members))
}

// SearchMembers searches members by name or national id
// @Summary Search members
// @Description Case-insensitive name match or national id match ignoring periods
// @Tags Records
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search text"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.RowsResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /records/search [get]
func (h *MemberHandler) SearchMembers(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return response.BadRequest(c, "q is required")
	}

	params := pagination.GetParams(c)
	members, total, err := h.memberService.Search(c.Context(), query, params)
	if err != nil {
		return writeServiceError(c, err)
	}

	return response.Page(c, models.ToResponses(members), pagination.GetMeta(params, total))
}

// GetMember gets a member by ID
// @Summary Get member
// @Tags Records
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.RecordResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /records/{id} [get]
func (h *MemberHandler) GetMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	member, err := h.memberService.Get(c.Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}

	return response.Record(c, fiber.StatusOK, member.ToResponse())
}

// CreateMember creates a new member record
// @Summary Create member
// @Tags Records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body MemberRequest true "Member data"
// @Success 201 {object} response.RecordResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /records [post]
func (h *MemberHandler) CreateMember(c *fiber.Ctx) error {
	var req MemberRequest
	if err := decodeStrict(c.Body(), &req); err != nil {
		return response.BadRequest(c, "Invalid request body: "+err.Error())
	}

	member, err := h.memberService.Create(c.Context(), req.toInput())
	if err != nil {
		return writeServiceError(c, err)
	}

	return response.Record(c, fiber.StatusCreated, member.ToResponse())
}

// UpdateMember replaces a member record
// @Summary Update member
// @Tags Records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param body body MemberRequest true "Member data"
// @Success 200 {object} response.RecordResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /records/{id} [put]
func (h *MemberHandler) UpdateMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req MemberRequest
	if err := decodeStrict(c.Body(), &req); err != nil {
		return response.BadRequest(c, "Invalid request body: "+err.Error())
	}

	member, err := h.memberService.Update(c.Context(), id, req.toInput())
	if err != nil {
		return writeServiceError(c, err)
	}

	return response.Record(c, fiber.StatusOK, member.ToResponse())
}

// DeleteMember deletes a member record
// @Summary Delete member
// @Tags Records
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /records/{id} [delete]
func (h *MemberHandler) DeleteMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.memberService.Delete(c.Context(), id); err != nil {
		return writeServiceError(c, err)
	}

	return response.Message(c, "Record deleted successfully")
}

// BulkDeleteMembers deletes the selected records one by one
// @Summary Bulk delete members
// @Description Deletes in order and stops at the first failure; earlier deletes are kept
// @Tags Records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BulkDeleteRequest true "Selected ids"
// @Success 200 {object} BulkDeleteResult
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} BulkDeleteFailure
// @Failure 500 {object} BulkDeleteFailure
// @Router /records/bulk-delete [post]
func (h *MemberHandler) BulkDeleteMembers(c *fiber.Ctx) error {
	var req BulkDeleteRequest
	if err := decodeStrict(c.Body(), &req); err != nil {
		return response.BadRequest(c, "Invalid request body: "+err.Error())
	}
	if len(req.IDs) == 0 {
		return response.BadRequest(c, "ids is required")
	}

	deleted, err := h.memberService.BulkDelete(c.Context(), req.IDs)
	if err != nil {
		var bulkErr *services.BulkDeleteError
		if !errors.As(err, &bulkErr) {
			return writeServiceError(c, err)
		}
		status, message := statusFor(bulkErr.Err)
		return c.Status(status).JSON(BulkDeleteFailure{
			Error:    message,
			FailedID: bulkErr.FailedID,
			Deleted:  bulkErr.Deleted,
		})
	}

	return c.JSON(BulkDeleteResult{
		Message: strconv.Itoa(len(deleted)) + " records deleted successfully",
		Deleted: deleted,
	})
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// decodeStrict decodes a single JSON object and rejects unknown fields
func decodeStrict(body []byte, dst interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty body")
		}
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON object")
	}
	return nil
}

// statusFor maps service errors to an HTTP status and a message safe to show
func statusFor(err error) (int, string) {
	switch {
	case domain.IsValidation(err):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidBirthday), errors.Is(err, domain.ErrUnknownReport):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "Record not found"
	case errors.Is(err, domain.ErrDuplicateKey):
		return fiber.StatusConflict, "A record with this national ID already exists"
	case errors.Is(err, domain.ErrEmptyReport):
		return fiber.StatusNotFound, "No data for this report"
	default:
		return fiber.StatusInternalServerError, "Storage failure, please try again"
	}
}

func writeServiceError(c *fiber.Ctx, err error) error {
	status, message := statusFor(err)
	return response.Error(c, status, message)
}
