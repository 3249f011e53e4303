package fastiron

import (
	"errors"
)

// fakeRepo is a scripted SwitchRepository. Commands without a scripted
// response get the FastIron rejection banner.
type fakeRepo struct {
	connected  bool
	connectErr error
	responses  map[string]string
	errs       map[string]error
	sent       []string
}

func newFakeRepo(responses map[string]string) *fakeRepo {
	return &fakeRepo{responses: responses, errs: map[string]error{}}
}

func (f *fakeRepo) Connect() error {
	if f.connectErr != nil {
		return f.connectErr
	}
	f.connected = true
	return nil
}

func (f *fakeRepo) Disconnect() {
	f.connected = false
}

func (f *fakeRepo) IsConnected() bool {
	return f.connected
}

func (f *fakeRepo) ExecuteCommand(cmd string) (string, error) {
	if !f.connected {
		return "", errors.New("not connected")
	}
	f.sent = append(f.sent, cmd)
	if err, ok := f.errs[cmd]; ok {
		return "", err
	}
	if resp, ok := f.responses[cmd]; ok {
		return resp, nil
	}
	return "Invalid input -> " + cmd + "\nType ? for a list", nil
}

const (
	bannerV7 = "  SW: Version 07.4.00fT7f3"
	bannerV8 = "  SW: Version 08.0.30eT213"
)
