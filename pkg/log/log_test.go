package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestConfigure(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	defer logrus.SetLevel(logrus.InfoLevel)

	var buf bytes.Buffer
	assert.True(t, Configure("warn", &buf))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	assert.False(t, Configure("barulhento", &buf))
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestWithFieldsEmDesenvolvimento(t *testing.T) {
	t.Setenv("APP_ENV", "dev")

	var buf bytes.Buffer
	base := &logger{entry: logrus.NewEntry(&logrus.Logger{
		Out:       &buf,
		Formatter: &logrus.JSONFormatter{},
		Level:     logrus.InfoLevel,
		Hooks:     make(logrus.LevelHooks),
	})}

	base.WithFields(Fields{
		FieldPath:   "/v1/dashboard",
		"user_name": "mario",
		"descartado": "sim",
	}).Info("ok")

	out := buf.String()
	assert.Contains(t, out, "/v1/dashboard")
	assert.Contains(t, out, "mario")
	assert.NotContains(t, out, "descartado")
}
