package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer

	log := New(&buf, false)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log = New(&buf, true)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("fact", "hostname").Debug("querying")
	assert.Contains(t, buf.String(), "fact=hostname")
	assert.Contains(t, buf.String(), "querying")
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Error("dropped")
	assert.NotNil(t, log)
}
