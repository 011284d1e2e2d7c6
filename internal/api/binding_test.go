package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageQueryOffset(t *testing.T) {
	assert.Equal(t, 0, PageQuery{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 10, PageQuery{Page: 2, PageSize: 10}.Offset())
	assert.Equal(t, 50, PageQuery{Page: 6, PageSize: 10}.Offset())
}

func TestBindMessageFallback(t *testing.T) {
	msg := BindMessage(errors.New("unexpected EOF"))
	assert.Equal(t, "Corpo da requisição inválido", msg)
}
