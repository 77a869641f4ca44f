package controller

import (
	"assessment_backend/internal/service"
	"assessment_backend/internal/util"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	CertificateService *service.CertificateService
}

func NewCertificateController(certificateService *service.CertificateService) *CertificateController {
	return &CertificateController{CertificateService: certificateService}
}

// @Summary List certificates
// @Tags certificates
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Result[[]model.Certificate]
// @Router /api/certificates [get]
func (c *CertificateController) ListCertificates(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.CertificateService.ListCertificates())
}

// @Summary Issue a certificate for a passed result
// @Tags certificates
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param certificate body service.IssueCertificateInput true "Result to certify"
// @Success 200 {object} util.Result[model.Certificate]
// @Router /api/certificates [post]
func (c *CertificateController) IssueCertificate(ctx *gin.Context) {
	var input service.IssueCertificateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	ctx.JSON(http.StatusOK, c.CertificateService.IssueCertificate(input))
}

// @Summary Revoke a certificate
// @Tags certificates
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Certificate id"
// @Success 200 {object} util.Result[struct{}]
// @Router /api/certificates/{id}/revoke [post]
func (c *CertificateController) RevokeCertificate(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	ctx.JSON(http.StatusOK, c.CertificateService.RevokeCertificate(id))
}

// @Summary Download a certificate file
// @Tags certificates
// @Produce application/pdf
// @Security ApiKeyAuth
// @Param id path int true "Certificate id"
// @Success 200 {file} binary
// @Router /api/certificates/{id}/download [get]
func (c *CertificateController) DownloadCertificate(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	res := c.CertificateService.DownloadCertificate(id)
	if !res.Success {
		ctx.JSON(http.StatusOK, res)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Data.FileName))
	ctx.Data(http.StatusOK, res.Data.ContentType, res.Data.Content)
}
