package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bellathena/cityhill-backoffice/internal/availability"
	"github.com/bellathena/cityhill-backoffice/internal/model"
	"github.com/bellathena/cityhill-backoffice/internal/queue"
	"github.com/bellathena/cityhill-backoffice/internal/upstream"
)

type createContractRequest struct {
	RoomID          int64       `json:"roomId" validate:"required,gt=0"`
	CustomerID      int64       `json:"customerId" validate:"required,gt=0"`
	StartDate       model.Date  `json:"startDate"`
	EndDate         *model.Date `json:"endDate"` // nil = open-ended
	DepositAmount   float64     `json:"depositAmount" validate:"gte=0"`
	AdvancePayment  float64     `json:"advancePayment" validate:"gte=0"`
	MonthlyRentRate *float64    `json:"monthlyRentRate"` // overrides the rate card
}

// contractView is a contract with its room and customer expanded from the
// snapshot.
type contractView struct {
	model.MonthlyContract
	Room     model.Room     `json:"room"`
	Customer model.Customer `json:"customer"`
}

// ListMonthlyContracts returns all contracts from the snapshot with their
// room and customer expanded.
func (h *Handler) ListMonthlyContracts(c echo.Context) error {
	snap := h.Store.Current()
	views := make([]contractView, 0, len(snap.MonthlyContracts))
	for _, mc := range snap.MonthlyContracts {
		v := contractView{MonthlyContract: mc}
		v.Room, _ = snap.RoomByID(mc.RoomID)
		v.Customer, _ = snap.CustomerByID(mc.CustomerID)
		views = append(views, v)
	}
	return c.JSON(http.StatusOK, views)
}

// CreateMonthlyContract validates and gates a new contract, then creates it
// upstream in PENDING state.  An open-ended contract is gated as if it ran
// to the far-future sentinel, so it conflicts with everything after its
// start.
func (h *Handler) CreateMonthlyContract(c echo.Context) error {
	var req createContractRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.StartDate.IsZero() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "startDate is required"})
	}
	end := model.FarFuture
	if req.EndDate != nil && !req.EndDate.IsZero() {
		end = *req.EndDate
		if end.Before(req.StartDate) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "endDate precedes startDate"})
		}
	}

	snap := h.Store.Current()
	room, ok := snap.RoomByID(req.RoomID)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	}
	if room.AllowedType == model.RentDaily {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "room does not accept monthly contracts"})
	}
	if _, ok := snap.CustomerByID(req.CustomerID); !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
	}

	if err := resolver(snap).CheckConflict(req.RoomID, req.StartDate, end, "", 0); err != nil {
		var conflict *availability.ConflictError
		if errors.As(err, &conflict) {
			return conflictResponse(c, conflict)
		}
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	}

	rent := availability.MonthlyRateFor(room, snap.RoomTypes)
	if req.MonthlyRentRate != nil {
		rent = *req.MonthlyRentRate
	}

	ctx := c.Request().Context()
	contract, err := h.API.CreateMonthlyContract(ctx, upstream.MonthlyContractInput{
		RoomID:          req.RoomID,
		CustomerID:      req.CustomerID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		DepositAmount:   req.DepositAmount,
		AdvancePayment:  req.AdvancePayment,
		MonthlyRentRate: rent,
		ContractStatus:  model.ContractPending,
	})
	if err != nil {
		return h.upstreamError(c, err)
	}
	h.resync(ctx)

	h.publish(h.contractEvent(queue.ActionContractCreated, contract, actorID(c)))
	return c.JSON(http.StatusCreated, contract)
}

// ApproveMonthlyContract activates a pending contract.  The conflict gate
// runs again, excluding the contract itself, because another reservation may
// have landed on the room since the contract was filed.
func (h *Handler) ApproveMonthlyContract(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	snap := h.Store.Current()
	contract, ok := snap.ContractByID(id)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "contract not found"})
	}
	if contract.ContractStatus != model.ContractPending {
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "contract is " + string(contract.ContractStatus) + ", expected PENDING",
		})
	}

	if err := resolver(snap).CheckConflict(contract.RoomID, contract.StartDate, contract.EffectiveEnd(),
		model.OccupancyMonthly, contract.ID); err != nil {
		var conflict *availability.ConflictError
		if errors.As(err, &conflict) {
			return conflictResponse(c, conflict)
		}
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	}

	ctx := c.Request().Context()
	active := model.ContractActive
	updated, err := h.API.UpdateMonthlyContract(ctx, id, upstream.MonthlyContractPatch{ContractStatus: &active})
	if err != nil {
		return h.upstreamError(c, err)
	}
	h.resync(ctx)

	h.publish(h.contractEvent(queue.ActionContractApproved, updated, actorID(c)))
	return c.JSON(http.StatusOK, updated)
}

type closeContractRequest struct {
	EndDate *model.Date `json:"endDate"` // default: today
}

// CloseMonthlyContract ends a contract, setting its end date and CLOSED
// status so the room frees up from that day forward.
func (h *Handler) CloseMonthlyContract(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req closeContractRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	snap := h.Store.Current()
	contract, ok := snap.ContractByID(id)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "contract not found"})
	}
	if contract.ContractStatus == model.ContractClosed {
		return c.JSON(http.StatusConflict, echo.Map{"error": "contract is already closed"})
	}

	end := model.Today()
	if req.EndDate != nil && !req.EndDate.IsZero() {
		end = *req.EndDate
	}
	if end.Before(contract.StartDate) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "endDate precedes contract start"})
	}

	ctx := c.Request().Context()
	closed := model.ContractClosed
	updated, err := h.API.UpdateMonthlyContract(ctx, id, upstream.MonthlyContractPatch{
		ContractStatus: &closed,
		EndDate:        &end,
	})
	if err != nil {
		return h.upstreamError(c, err)
	}
	h.resync(ctx)

	h.publish(h.contractEvent(queue.ActionContractClosed, updated, actorID(c)))
	return c.JSON(http.StatusOK, updated)
}

// DeleteMonthlyContract removes a contract entirely, used for contracts
// filed in error.
func (h *Handler) DeleteMonthlyContract(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	snap := h.Store.Current()
	contract, ok := snap.ContractByID(id)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "contract not found"})
	}

	ctx := c.Request().Context()
	if err := h.API.DeleteMonthlyContract(ctx, id); err != nil {
		return h.upstreamError(c, err)
	}
	h.resync(ctx)

	h.publish(h.contractEvent(queue.ActionContractCancelled, contract, actorID(c)))
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) contractEvent(action string, mc model.MonthlyContract, actor int64) queue.ReservationEvent {
	snap := h.Store.Current()
	ev := queue.ReservationEvent{
		Action:        action,
		Kind:          string(model.OccupancyMonthly),
		ReservationID: mc.ID,
		RoomID:        mc.RoomID,
		CustomerID:    mc.CustomerID,
		StartDate:     mc.StartDate.String(),
		Amount:        mc.MonthlyRentRate,
		ActorID:       actor,
	}
	if !mc.EndDate.IsZero() {
		ev.EndDate = mc.EndDate.String()
	}
	if room, ok := snap.RoomByID(mc.RoomID); ok {
		ev.RoomNumber = room.RoomNumber
	}
	if cust, ok := snap.CustomerByID(mc.CustomerID); ok {
		ev.CustomerName = cust.FullName
	}
	return ev
}
