package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateKnownConditions(t *testing.T) {
	assert.Equal(t, "Selkeää", Translate("clear sky"))
	assert.Equal(t, "Kevyttä lumisadetta", Translate("light snow"))
	assert.Equal(t, "Pilvistä", Translate("overcast clouds"))
}

func TestTranslateIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, "Sadetta", Translate("Rain"))
}

func TestTranslateFallsBackToTitleCase(t *testing.T) {
	assert.Equal(t, "Volcanic Ash", Translate("volcanic ash"))
	assert.Equal(t, "", Translate(""))
}
