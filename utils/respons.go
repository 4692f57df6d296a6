package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

// RespondError menulis error dalam envelope yang sama. Untuk kegagalan
// internal (5xx) di mode release, detail error tidak ikut bocor ke klien;
// mode development tetap menampilkannya.
func RespondError(c *gin.Context, code int, err error) {
	resp := JSONResponse{
		Status:  false,
		Message: err.Error(),
	}
	if code >= http.StatusInternalServerError {
		if ErrorLogger != nil {
			ErrorLogger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}
		resp.Message = "Internal server error"
		if gin.Mode() != gin.ReleaseMode {
			resp.Error = err.Error()
		}
	}
	c.JSON(code, resp)
}

// RespondErrorData seperti RespondError tapi menyertakan payload tambahan,
// misal daftar meja yang masih kosong saat kapasitas tidak cukup.
func RespondErrorData(c *gin.Context, code int, err error, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    data,
	})
}
