package cmd

import (
	"github.com/spf13/cobra"

	"github.com/maastricht-university/gesture-pipeline/annotate"
	"github.com/maastricht-university/gesture-pipeline/camera"
	"github.com/maastricht-university/gesture-pipeline/clients"
	cfg "github.com/maastricht-university/gesture-pipeline/config"
)

func newAnnotateCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "annotate",
		Short: "Show the webcam with detected expressions (press q to quit)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := a.conf
			cam, err := camera.Open(conf.Camera.Device)
			if err != nil {
				return err
			}
			defer cam.Close()

			win := camera.NewWindow(conf.Camera.Window)
			defer win.Close()

			h := clients.NewHTTP(cfg.DurSeconds(conf.HTTP.Timeout), conf.Services.Emotion.APIKey, a.log)
			loop := &annotate.Loop{
				Source:   cam,
				Detector: clients.Detector{HTTP: h, URL: conf.Services.Emotion.URL},
				Display:  win,
				KeyPoll:  cfg.DurMillis(conf.Camera.KeyPoll),
				Log:      a.log,
			}

			a.log.Info("starting facial recognition, press 'q' to quit")
			frames, err := loop.Run(cmd.Context())
			a.log.WithField("frames", frames).Info("annotation stopped")
			return err
		},
	}
	c.Flags().Int("device", 0, "camera device index")
	c.Flags().String("window", "", "window title")
	c.Flags().String("emotion-url", "", "emotion detector base URL")
	_ = a.v.BindPFlag("camera.device", c.Flags().Lookup("device"))
	_ = a.v.BindPFlag("camera.window", c.Flags().Lookup("window"))
	_ = a.v.BindPFlag("services.emotion.url", c.Flags().Lookup("emotion-url"))
	return c
}
