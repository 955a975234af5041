package response

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code int
	Msg  string
	// 字段级校验错误, 如 {"title": ["标题不能为空"]}
	Errors map[string][]string
}

func (e *BizError) Error() string {
	if len(e.Errors) == 0 {
		return e.Msg
	}
	return e.Msg + ": " + FlattenErrors(e.Errors)
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func NewValidationError(msg string, errs map[string][]string) *BizError {
	return &BizError{
		Code:   http.StatusUnprocessableEntity,
		Msg:    msg,
		Errors: errs,
	}
}

// FlattenErrors 把字段级错误拼接成一条可展示的消息
func FlattenErrors(errs map[string][]string) string {
	if len(errs) == 0 {
		return ""
	}
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(errs))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(errs[f], "; "))
	}
	return strings.Join(parts, ", ")
}

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.JSON(http.StatusInternalServerError, Response{
					Code: 500,
					Msg:  "系统异常",
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if be, ok := err.(*BizError); ok {
				Fail(c, be.Code, be.Msg)
			} else {
				Fail(c, 500, err.Error())
			}
			c.Abort()
		}
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
