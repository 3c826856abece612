// Package transport exposes the HTTP and gRPC surface of the read API.
package transport

import (
	"net/http"
	"time"

	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/model"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

// LookupPattern is the route served by OpReturnHandler.Lookup.
const LookupPattern = "/opreturn/{payload}"

// OpReturnHandler answers record lookups by marker payload.
type OpReturnHandler struct {
	finder    RecordFinder
	metrics   LookupMetrics
	marshaler gwruntime.Marshaler
	logger    *zap.Logger
}

// NewOpReturnHandler returns an OpReturnHandler instance.
func NewOpReturnHandler(finder RecordFinder, metrics LookupMetrics, logger *zap.Logger) *OpReturnHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpReturnHandler{
		finder:    finder,
		metrics:   metrics,
		marshaler: &gwruntime.JSONBuiltin{},
		logger:    logger.Named("opreturn_handler"),
	}
}

// Lookup writes every record carrying the payload path parameter.
// Failed lookups are answered with an empty list.
func (h *OpReturnHandler) Lookup(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	started := time.Now()
	payload := pathParams["payload"]

	records, err := h.finder.FindRecords(r.Context(), payload)
	h.metrics.ObserveLookup(err, len(records), started)
	if err != nil {
		h.logger.Error("find records failed", zap.String("payload", payload), zap.Error(err))
		records = nil
	}
	if records == nil {
		records = []model.DiscoveredRecord{}
	}

	body, err := h.marshaler.Marshal(records)
	if err != nil {
		h.logger.Error("marshal records failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", h.marshaler.ContentType(records))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.logger.Debug("write response failed", zap.Error(err))
	}
}
