package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/gigpay/internal/config"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_CleanShutdown() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.app.Wait(ctx, cancel)

	s.NoError(err)
}

func (s *ApplicationSuite) TestBuildReportCache_Disabled() {
	c, err := s.app.buildReportCache(context.Background(), &config.Config{})

	s.NoError(err)
	s.Nil(c)
	s.Nil(s.app.redis)
}

func (s *ApplicationSuite) TestBuildReportCache_Unreachable() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.app.buildReportCache(ctx, &config.Config{RedisAddr: "127.0.0.1:1"})

	s.Error(err)
}

func (s *ApplicationSuite) TestCloseStores_NothingOpen() {
	s.NotPanics(s.app.closeStores)
}
