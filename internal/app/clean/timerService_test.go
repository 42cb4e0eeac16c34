package clean

import (
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type cleanerFake struct {
	lock    sync.Mutex
	cleaned []string
	err     error
}

func (c *cleanerFake) Clean(ID string) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.cleaned = append(c.cleaned, ID)
	return c.err
}

func (c *cleanerFake) count() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return len(c.cleaned)
}

type idsProviderFake struct {
	lock  sync.Mutex
	ids   []string
	err   error
	calls int
}

func (p *idsProviderFake) Get() ([]string, error) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.calls++
	return p.ids, p.err
}

func (p *idsProviderFake) callCount() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.calls
}

func newtData() (*timerServiceData, *cleanerFake, *idsProviderFake) {
	cleaner := &cleanerFake{}
	provider := &idsProviderFake{}
	data := timerServiceData{}
	data.workWaitChan = make(chan struct{})
	data.qChan = make(chan struct{})
	data.runEvery = time.Minute
	data.cleaner = cleaner
	data.idsProvider = provider
	return &data, cleaner, provider
}

func TestInvokesOnStartup(t *testing.T) {
	d, _, provider := newtData()

	startCleanTimer(d)

	go close(d.qChan)
	<-d.workWaitChan
	assert.Equal(t, 1, provider.callCount())
}

func TestInvokesOnTimer(t *testing.T) {
	d, _, provider := newtData()
	d.runEvery = time.Millisecond * 5

	startCleanTimer(d)

	time.Sleep(30 * time.Millisecond)
	go close(d.qChan)
	<-d.workWaitChan
	assert.True(t, provider.callCount() >= 3)
}

func TestInvokesCleaner(t *testing.T) {
	d, cleaner, provider := newtData()
	provider.ids = []string{"1", "2"}

	startCleanTimer(d)

	go close(d.qChan)
	<-d.workWaitChan
	assert.Equal(t, 2, cleaner.count())
}

func TestInvokesCleanerWithFailure(t *testing.T) {
	d, cleaner, provider := newtData()
	provider.ids = []string{"1", "2"}
	cleaner.err = errors.New("error")

	startCleanTimer(d)

	go close(d.qChan)
	<-d.workWaitChan
	assert.Equal(t, 2, cleaner.count())
}

func TestContinuesOnProviderError(t *testing.T) {
	d, _, provider := newtData()
	provider.err = errors.New("error")
	d.runEvery = time.Millisecond * 10

	startCleanTimer(d)

	time.Sleep(55 * time.Millisecond)
	go close(d.qChan)
	<-d.workWaitChan
	assert.True(t, provider.callCount() >= 3)
}
