package arena

import "errors"

// failingPageSource lets GetPage succeed failCount times before always
// failing with errBoom, so tests can exercise the error-returning Try*
// surface without genuinely exhausting memory.
type failingPageSource struct {
	failCount int
	calls     int
}

var errBoom = errors.New("boom: synthetic page source failure")

func (p *failingPageSource) GetPage(n int) ([]byte, error) {
	p.calls++
	if p.calls > p.failCount {
		return nil, errBoom
	}
	return make([]byte, n), nil
}
