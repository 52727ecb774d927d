package controllers

import (
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akothari/campus-registry/internal/app/models/dto"
)

// HealthController handles liveness probes and the root welcome endpoint
type HealthController struct{}

// NewHealthController creates a new HealthController
func NewHealthController() *HealthController {
	return &HealthController{}
}

// GetHealth reports liveness
// @Summary Health check
// @Description Reports service liveness with an optional echo of the query parameter
// @Tags health
// @Produce json
// @Param echo query string false "Optional echo string"
// @Success 200 {object} dto.HealthResponse "Service is alive"
// @Router /health [get]
func (c *HealthController) GetHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, makeHealth(queryValue(ctx, "echo"), nil))
}

// GetHealthWithPath reports liveness, echoing the path segment
// @Summary Health check with path echo
// @Description Reports service liveness, echoing both the path segment and the optional query parameter
// @Tags health
// @Produce json
// @Param path_echo path string true "Required echo in the URL path"
// @Param echo query string false "Optional echo string"
// @Success 200 {object} dto.HealthResponse "Service is alive"
// @Router /health/{path_echo} [get]
func (c *HealthController) GetHealthWithPath(ctx *gin.Context) {
	pathEcho := ctx.Param("path_echo")
	ctx.JSON(http.StatusOK, makeHealth(queryValue(ctx, "echo"), &pathEcho))
}

// Root returns the API welcome message
// @Summary Welcome message
// @Tags health
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router / [get]
func (c *HealthController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Welcome to the Campus Registry API. See /docs for the OpenAPI UI.",
	})
}

func makeHealth(echo, pathEcho *string) dto.HealthResponse {
	return dto.HealthResponse{
		Status:        http.StatusOK,
		StatusMessage: "OK",
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		IPAddress:     resolveHostIP(),
		Echo:          echo,
		PathEcho:      pathEcho,
	}
}

// resolveHostIP resolves the host's own address, falling back to loopback
// when the hostname does not resolve (common in minimal containers).
func resolveHostIP() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "127.0.0.1"
	}
	addrs, err := net.LookupIP(hostname)
	if err != nil {
		return "127.0.0.1"
	}
	for _, addr := range addrs {
		if v4 := addr.To4(); v4 != nil {
			return v4.String()
		}
	}
	if len(addrs) > 0 {
		return addrs[0].String()
	}
	return "127.0.0.1"
}
