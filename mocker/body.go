package mocker

import (
	"io/ioutil"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// FilePrefix marks declared body content as file-backed; the remainder of
// the string is the path read at response time.
const FilePrefix = "@file://"

// Body resolves response content lazily. It is either inline text or a
// reference to a file that is re-read on every call; nothing is cached, so
// the backing file may change or vanish between requests.
type Body struct {
	content string
	file    string
	isFile  bool
	logger  logrus.FieldLogger
}

// NewBody classifies raw declared content. Content starting with
// FilePrefix becomes file-backed, anything else is served inline.
func NewBody(raw string, logger logrus.FieldLogger) *Body {
	b := &Body{content: raw, logger: logger}

	if strings.HasPrefix(raw, FilePrefix) {
		b.isFile = true
		b.file = strings.TrimPrefix(raw, FilePrefix)
	}

	return b
}

// newInlineBody wraps already-rendered content, bypassing the file prefix
// check. Used for synthesized responses whose text is never a file path.
func newInlineBody(content string) *Body {
	return &Body{content: content}
}

// Load returns the body bytes. An unreadable backing file is logged and
// served as no content; the request still completes with its configured
// status.
func (b *Body) Load() []byte {
	if !b.isFile {
		return []byte(b.content)
	}

	data, err := ioutil.ReadFile(b.file)
	if err != nil {
		b.logger.WithError(err).WithField("file", b.file).Error("failed to read body file")
		return nil
	}

	return data
}

// Length reports the byte length the body will have when loaded: the text
// length for inline content, the file size at query time for file-backed
// content. An inaccessible file reports 0.
func (b *Body) Length() int {
	if !b.isFile {
		return len(b.content)
	}

	info, err := os.Stat(b.file)
	if err != nil {
		return 0
	}

	return int(info.Size())
}
