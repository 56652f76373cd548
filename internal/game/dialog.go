package game

import (
	"errors"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/cloth/internal/config"
)

func confirmReset() (bool, error) {
	err := zenity.Question("Reset the cloth to its initial shape?",
		zenity.Title("Cloth"),
		zenity.OKLabel("Reset"),
		zenity.CancelLabel("Keep"),
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func showHelp() error {
	return zenity.Info(config.Help, zenity.Title("Cloth help"), zenity.NoWrap())
}

// ShowError reports a fatal error in a native dialog. Failing to show the
// dialog is ignored; the caller has already printed the error.
func ShowError(err error) {
	_ = zenity.Error(err.Error(), zenity.Title("Cloth"))
}
