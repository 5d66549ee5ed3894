// Package camera wraps the OpenCV capture device and preview window.
package camera

import (
	"fmt"
	"image"
	"io"
	"time"

	"gocv.io/x/gocv"
)

type Capture struct {
	vc  *gocv.VideoCapture
	mat gocv.Mat
}

// Open opens a system video device; 0 is the default camera.
func Open(device int) (*Capture, error) {
	vc, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("camera %d: %w", device, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("camera %d: could not open", device)
	}
	return &Capture{vc: vc, mat: gocv.NewMat()}, nil
}

// Read grabs the next frame. A failed or empty grab is reported as io.EOF.
func (c *Capture) Read() (image.Image, error) {
	if ok := c.vc.Read(&c.mat); !ok || c.mat.Empty() {
		return nil, io.EOF
	}
	return c.mat.ToImage()
}

func (c *Capture) Close() error {
	c.mat.Close()
	return c.vc.Close()
}

type Window struct {
	w *gocv.Window
}

func NewWindow(title string) *Window {
	return &Window{w: gocv.NewWindow(title)}
}

func (w *Window) Show(img image.Image) error {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return err
	}
	defer mat.Close()
	w.w.IMShow(mat)
	return nil
}

// PollKey waits up to d for a key press; -1 means none.
func (w *Window) PollKey(d time.Duration) int {
	ms := int(d / time.Millisecond)
	if ms < 1 {
		ms = 1
	}
	return w.w.WaitKey(ms)
}

func (w *Window) Close() error {
	return w.w.Close()
}
