package route

import (
	"net/http"
	"strings"

	"git.thinkinpower.net/cardkit/bdata"
	"git.thinkinpower.net/cardkit/mod"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

// feedback records metadata for a BIN prefix that the database does not
// know yet.
func (h *handler) feedback(ctx *gin.Context) {
	bin := ctx.Param("bin")
	if !bdata.ValidPrefix(bin) {
		ctx.JSON(http.StatusOK, mod.ResponseValue{Code: mod.ResponseCodeInvalidParams, Msg: "bin must be 1 to 8 digits"})
		return
	}

	var body mod.BinFeedback
	if err := ctx.ShouldBindJSON(&body); err != nil {
		logger.Warnf("feedback %s: %s", bin, err)
		ctx.JSON(http.StatusOK, mod.ResponseValue{Code: mod.ResponseCodeFailure, Msg: "cannot parse request body"})
		return
	}
	if strings.TrimSpace(body.Type) == "" || strings.TrimSpace(body.Level) == "" {
		ctx.JSON(http.StatusOK, mod.ResponseValue{Code: mod.ResponseCodeMissingParams, Msg: "type and level are required"})
		return
	}

	var (
		record mod.BinRecord
		ok     bool
	)
	record, ok = toRecord(bin, body)
	if !ok {
		ctx.JSON(http.StatusOK, mod.ResponseValue{Code: mod.ResponseCodeInvalidParams, Msg: "invalid type, level or region"})
		return
	}
	if err := h.db.Save(record); err != nil {
		logger.Errorf("feedback %s: %s", bin, err)
		msg := "save failed"
		if errors.Is(err, bdata.ErrNoDataDir) {
			msg = err.Error()
		}
		ctx.JSON(http.StatusOK, mod.ResponseValue{Code: mod.ResponseCodeFailure, Msg: msg})
		return
	}
	ctx.JSON(http.StatusOK, mod.ResponseValue{Code: mod.ResponseCodeSuccess, Msg: "ok"})
}

func toRecord(bin string, body mod.BinFeedback) (mod.BinRecord, bool) {
	t, okType := mod.ParseCardType(body.Type)
	l, okLevel := mod.ParseCardLevel(body.Level)
	r, okRegion := mod.ParseCardRegion(body.Region)
	if !okType || !okLevel || !okRegion {
		return mod.BinRecord{}, false
	}
	return mod.BinRecord{
		Prefix: bin,
		BinMetadata: mod.BinMetadata{
			Type:    t,
			Level:   l,
			Region:  r,
			Bank:    strings.TrimSpace(body.Bank),
			Country: strings.ToUpper(strings.TrimSpace(body.Country)),
		},
	}, true
}
