package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/plumber/internal/domain/entity"
)

func createTestCamera() (*Camera, *entity.Body) {
	bounds := entity.Bounds{Right: 1920, Bottom: 512, Ceiling: -160}
	cam := NewCamera(256, 240, bounds)
	body := entity.NewBody(0, 0, 6, 8)
	cam.SetTarget(&body)
	return cam, &body
}

func TestNewCamera(t *testing.T) {
	cam, _ := createTestCamera()

	assert.Equal(t, 256.0, cam.W)
	assert.Equal(t, 240.0, cam.H)
	assert.Equal(t, -128.0, cam.OffX)
	assert.Equal(t, -120.0, cam.OffY)
}

func TestCamera_CentersOnTarget(t *testing.T) {
	cam, body := createTestCamera()
	body.X = 600
	body.Y = 300

	cam.Update()

	assert.Equal(t, 472.0, cam.X)
	assert.Equal(t, 180.0, cam.Y)
}

func TestCamera_ClampsToWorld(t *testing.T) {
	cam, body := createTestCamera()

	// Target at the world origin: camera pins to the top-left corner
	body.X = 0
	body.Y = 0
	cam.Update()
	assert.Equal(t, 0.0, cam.X)
	assert.Equal(t, 0.0, cam.Y)

	// Target at the far right: camera pins to the right scroll limit
	body.X = 1920
	body.Y = 512
	cam.Update()
	assert.Equal(t, 1920.0-256, cam.X)
	assert.Equal(t, 512.0-240, cam.Y)
}

func TestCamera_NeverScrollsAboveOrigin(t *testing.T) {
	cam, body := createTestCamera()
	body.X = 600
	body.Y = -100

	cam.Update()

	assert.Equal(t, 0.0, cam.Y, "vertical tracking stops at the world top")
}

func TestCamera_NoTargetIsInert(t *testing.T) {
	cam, _ := createTestCamera()
	cam.SetTarget(nil)
	cam.X = 42

	cam.Update()

	assert.Equal(t, 42.0, cam.X)
}
