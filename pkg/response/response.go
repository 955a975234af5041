package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code int                 `json:"code"`
	Msg  string              `json:"message"`
	Data any                 `json:"data,omitempty"`
	Errs map[string][]string `json:"errors,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Msg:  "ok",
		Data: data,
	})
}

func Fail(c *gin.Context, code int, msg string) {
	httpStatus := code
	if httpStatus < 400 || httpStatus > 599 {
		httpStatus = http.StatusOK
	}
	c.JSON(httpStatus, Response{
		Code: code,
		Msg:  msg,
	})
}

func FailWithErrors(c *gin.Context, code int, msg string, errs map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, Response{
		Code: code,
		Msg:  msg,
		Errs: errs,
	})
}
