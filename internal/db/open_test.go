package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithParams(t *testing.T) {
	assert.Equal(t, "u:p@tcp(h:3306)/a?parseTime=true&loc=UTC", withParams("u:p@tcp(h:3306)/a"))
	assert.Equal(t, "u:p@tcp(h:3306)/a?charset=utf8mb4&parseTime=true&loc=UTC", withParams("u:p@tcp(h:3306)/a?charset=utf8mb4"))
	assert.Equal(t, "u:p@tcp(h:3306)/a?parseTime=true&loc=Local", withParams("u:p@tcp(h:3306)/a?parseTime=true&loc=Local"))
}
