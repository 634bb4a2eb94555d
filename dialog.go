package main

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/gotk3/gotk3/gtk"
)

func CatchPanicToContext(ctxCancel context.CancelCauseFunc) {
	if v := recover(); v != nil {
		err, ok := v.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", v)
		}
		err = fmt.Errorf("%w\n%v", err, string(debug.Stack()))
		if ctxCancel != nil {
			ctxCancel(err)
		}
	}
}

// NewErrorDialog shows err in a modal dialog and returns once it is dismissed.
func NewErrorDialog(
	parent *gtk.ApplicationWindow,
	err error,
) {
	_, file, line, ok := runtime.Caller(1)

	fileLocation := "unknown file"
	if ok {
		fileLocation = fmt.Sprintf("%s:%v", file, line)
	}

	dialog := gtk.MessageDialogNew(
		parent,
		gtk.DIALOG_DESTROY_WITH_PARENT,
		gtk.MESSAGE_ERROR,
		gtk.BUTTONS_CLOSE,
		"Error in %s: %s",
		fileLocation,
		err.Error(),
	)

	dialog.Connect("response", dialog.Destroy)

	messageArea, areaErr := dialog.GetMessageArea()
	if areaErr == nil {
		messageArea.GetChildren().Foreach(func(item interface{}) {
			if widget, ok := item.(*gtk.Widget); ok {
				l, err := gtk.WidgetToLabel(widget)
				if err != nil {
					return
				}

				l.SetSelectable(true)
			}
		})
	}

	dialog.SetKeepAbove(true)
	dialog.Run()
}
