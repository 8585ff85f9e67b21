package cli

import (
	"errors"
	"fmt"
	"io"

	errs "github.com/cipherstack/cipherstack/pkg/errors"
	"github.com/cipherstack/cipherstack/pkg/pipeline"
)

// ReportError prints err for a terminal user: the error code and message,
// then the failing layer when there is one.
func ReportError(w io.Writer, err error) {
	msg := errs.UserMessage(err)
	if code := errs.GetCode(err); code != "" {
		msg = fmt.Sprintf("%s: %s", code, msg)
	}
	printError(w, "%s", msg)

	var le *pipeline.LayerError
	if errors.As(err, &le) {
		printDetail(w, "layer %d (%s)", le.Index+1, le.Algorithm)
	}
}
