package controllers

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// bindStrictJSON decodes exactly one JSON value from the body into dst.
// Unknown fields and anything after the value, including stray closing
// brackets, are rejected.
func bindStrictJSON(c *gin.Context, dst any) error {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return errors.Wrap(err, "decode body")
	}
	if _, err := decoder.Token(); err != io.EOF {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
