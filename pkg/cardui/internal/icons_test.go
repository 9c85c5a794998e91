package internal

import (
	"testing"

	"github.com/kaushalbhalara/routerdemo/pkg/cardui/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterizeBundledIcons(t *testing.T) {
	icons := []constants.Icon{
		constants.IconPerson, constants.IconGear, constants.IconBell,
		constants.IconLock, constants.IconInfo, constants.IconStar,
		constants.IconHouse, constants.IconChevronLeft, constants.IconChevronRight,
	}

	for _, icon := range icons {
		img, err := RasterizeIcon(icon, 32)
		require.NoError(t, err, icon)
		assert.Equal(t, 32, img.Bounds().Dx())

		opaque := 0
		for i := 3; i < len(img.Pix); i += 4 {
			if img.Pix[i] > 0 {
				opaque++
			}
		}
		assert.Positive(t, opaque, "icon %s drew nothing", icon)
	}
}

func TestRasterizeUnknownIcon(t *testing.T) {
	_, err := RasterizeIcon("rocket", 16)
	assert.Error(t, err)

	_, err = RasterizeIcon(constants.IconStar, 0)
	assert.ErrorContains(t, err, "invalid size")
}
