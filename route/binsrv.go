package route

import (
	"net/http"

	"git.thinkinpower.net/cardkit/bdata"
	"git.thinkinpower.net/cardkit/mod"
	"git.thinkinpower.net/cardkit/pattern"
	"github.com/gin-gonic/gin"
)

func (h *handler) binQuery(ctx *gin.Context) {
	bin := ctx.Param("bin")
	if !bdata.ValidPrefix(bin) {
		ctx.JSON(http.StatusOK, mod.ResponseValue{Code: mod.ResponseCodeInvalidParams, Msg: "bin must be 1 to 8 digits"})
		return
	}

	det := h.engine.DetectCard(bin)
	if det.Brand == mod.BrandUnknown && h.db.Lookup(bin).IsZero() {
		ctx.JSON(http.StatusOK, mod.ResponseValue{Code: mod.ResponseCodeNotFound, Msg: "unknown bin"})
		return
	}

	result := mod.BinQueryResult{
		Bin:            bin,
		Brand:          det.Brand,
		BrandName:      det.Brand.Name(),
		PossibleBrands: det.PossibleBrands,
		Metadata:       det.Metadata,
		Format:         det.Format,
	}
	ctx.JSON(http.StatusOK, mod.ResponseData{ResponseValue: mod.ResponseValue{Code: mod.ResponseCodeSuccess, Msg: "ok"}, Data: result})
}

func (h *handler) brands(ctx *gin.Context) {
	brands := pattern.Brands()
	infos := make([]mod.BrandInfo, 0, len(brands))
	for _, b := range brands {
		f, _ := pattern.Lookup(b)
		infos = append(infos, mod.BrandInfo{Brand: b, Name: b.Name(), Format: f})
	}
	ctx.JSON(http.StatusOK, mod.ResponseData{ResponseValue: mod.ResponseValue{Code: mod.ResponseCodeSuccess, Msg: "ok"}, Data: infos})
}
