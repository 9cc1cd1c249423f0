package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/AbdelrahmanZeidan5/receipt-processor/internal/receipt"
)

// notFoundMessage is the fixed body returned for unknown receipt IDs.
const notFoundMessage = "No receipt found for that ID."

// ReceiptApi - Receipt api
type ReceiptApi struct {
	repo   receipt.ReceiptRepository
	logger zerolog.Logger
}

// NewReceiptApi - default instance of ReceiptApi. The repository is injected
// once here; handlers hold no package-level state.
func NewReceiptApi(repo receipt.ReceiptRepository, logger zerolog.Logger) *ReceiptApi {
	return &ReceiptApi{
		repo:   repo,
		logger: logger,
	}
}

// InitializeRoutes defines the routes for the receipts
func (api *ReceiptApi) InitializeRoutes(mux *mux.Router) {
	mux.HandleFunc("/receipts/process", api.receiptProcessor)
	mux.HandleFunc("/receipts/{id}/points", api.getPointsByID)
}

// receiptProcessor REST endpoint POST /receipts/process
// validates a receipt body, scores it and stores the points under a fresh ID
func (api *ReceiptApi) receiptProcessor(w http.ResponseWriter, r *http.Request) {
	if methodTypeNotAllowed(w, r, http.MethodPost) {
		return
	}

	var currentReceipt receipt.Receipt
	if err := json.NewDecoder(r.Body).Decode(&currentReceipt); err != nil {
		writeErrorList(w, http.StatusBadRequest, []string{decodeErrorMessage(err)})
		return
	}

	validated, err := receipt.Validate(currentReceipt)
	if err != nil {
		var verr *receipt.ValidationError
		if errors.As(err, &verr) {
			writeErrorList(w, http.StatusBadRequest, verr.Messages())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	points := receipt.Points(validated)

	receiptID, err := api.repo.SavePoints(points)
	if err != nil {
		api.logger.Error().Err(err).Msg("failed to store receipt points")
		writeError(w, http.StatusInternalServerError, "failed to store receipt")
		return
	}

	api.logger.Debug().Str("id", receiptID).Int("points", points).Msg("receipt processed")
	writeJSON(w, http.StatusOK, map[string]string{"id": receiptID})
}

// getPointsByID REST endpoint GET /receipts/{id}/points
// takes in a dynamic string: id
// returns the points stored for that receipt
func (api *ReceiptApi) getPointsByID(w http.ResponseWriter, r *http.Request) {
	if methodTypeNotAllowed(w, r, http.MethodGet) {
		return
	}

	receiptID := mux.Vars(r)["id"]

	points, err := api.repo.PointsByID(receiptID)
	if errors.Is(err, receipt.ErrNotFound) {
		writeError(w, http.StatusNotFound, notFoundMessage)
		return
	}
	if err != nil {
		api.logger.Error().Err(err).Str("id", receiptID).Msg("failed to load receipt points")
		writeError(w, http.StatusInternalServerError, "failed to load receipt")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"points": points})
}

func methodTypeNotAllowed(w http.ResponseWriter, r *http.Request, methodType string) bool {
	if r.Method != methodType {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return true
	}
	return false
}

// decodeErrorMessage maps a JSON decode failure to one error-list entry,
// keeping the offending field path when the decoder knows it.
func decodeErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return typeErr.Field + ": must be of type " + typeErr.Type.String()
	}
	return "body: invalid JSON"
}
