// README: Shared handler utilities: the response envelope and error mapping.
package handlers

import (
	"github.com/gin-gonic/gin"

	"platefinder/internal/types"
)

// envelope is the response shape every restaurant endpoint returns. Error is
// nil on success so the frontend can distinguish "no matches" from "broken".
type envelope struct {
	Data            any               `json:"data"`
	Error           *string           `json:"error"`
	City            string            `json:"city,omitempty"`
	CityCoordinates *types.Coordinate `json:"cityCoordinates,omitempty"`
}

func writeData(c *gin.Context, status int, data any) {
	c.JSON(status, envelope{Data: data})
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, envelope{Error: &msg})
}
