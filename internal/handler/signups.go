package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/travel-package/internal/domain"
	"github.com/pkordes/travel-package/internal/report"
)

// SignUp handles POST /passengers/{number}/signups.
//
// A joined activity answers 200 with the receipt. A refusal is not a server
// error: a full activity answers 409 capacity_reached and a passenger who
// cannot pay answers 402 insufficient_balance, both carrying the receipt.
func (s *Server) SignUp(w http.ResponseWriter, r *http.Request) {
	number, err := pathInt(r, "number")
	if err != nil {
		badParam(w, r, err)
		return
	}
	var body signUpRequest
	if !decodeBody(w, r, &body) {
		return
	}
	activityID, err := uuid.Parse(body.ActivityID)
	if err != nil {
		badParam(w, r, fmt.Errorf("invalid activity_id: %w", err))
		return
	}

	receipt, err := s.bookings.SignUp(r.Context(), number, activityID)
	if err != nil {
		s.fail(w, r, err, fmt.Sprintf("passenger %d or activity %s not found", number, activityID))
		return
	}

	resp := receiptToResponse(receipt)
	switch receipt.Outcome {
	case domain.OutcomeSuccess:
		writeJSON(w, r, http.StatusOK, resp)
	case domain.OutcomeInsufficientBalance:
		writeJSON(w, r, http.StatusPaymentRequired, signUpRefusal{
			Error:   ErrorDetail{Code: receipt.Outcome.String(), Message: report.SignUpMessage(receipt.Outcome, receipt.ActivityName)},
			Receipt: resp,
		})
	default:
		writeJSON(w, r, http.StatusConflict, signUpRefusal{
			Error:   ErrorDetail{Code: receipt.Outcome.String(), Message: report.SignUpMessage(receipt.Outcome, receipt.ActivityName)},
			Receipt: resp,
		})
	}
}
