package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjpl/session-slides/model"
)

func TestSlideCount(t *testing.T) {
	// an empty session renders only the title slide
	assert.Equal(t, 1, slideCount(0))
	assert.Equal(t, 3, slideCount(1))
	assert.Equal(t, 12, slideCount(10))
}

func TestDeckTitleFor(t *testing.T) {
	assert.Equal(t, "webapp Session", deckTitleFor(&model.Session{ProjectPath: "/home/dev/webapp"}))
	assert.Equal(t, "Session Slides", deckTitleFor(&model.Session{}))
}
