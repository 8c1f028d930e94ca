// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coreerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapIs(t *testing.T) {
	err := Wrap(EntityDropped, "entity %d", 7)
	assert.True(t, errors.Is(err, EntityDropped))
	assert.False(t, errors.Is(err, ReentrantMutation))
}

func TestLogPassesThrough(t *testing.T) {
	assert.Nil(t, Log(nil))
	err := errors.New("boom")
	assert.Equal(t, err, Log(err))
}

func TestMustPanics(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(errors.New("boom")) })
}
