package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/stayup/internal/application/port"
	portmocks "github.com/bnema/stayup/internal/application/port/mocks"
	"github.com/bnema/stayup/internal/application/usecase"
)

func TestCuePlayer_CreatesSurfaceOnce(t *testing.T) {
	ctx := testContext()
	surface := portmocks.NewMockCueSurface(t)
	clock := newFakeClock()
	player := usecase.NewCuePlayer(surface, usecase.NewCueThrottle(usecase.DefaultCueThrottle, clock))

	surface.EXPECT().HasSurface(mock.Anything).Return(false, nil).Once()
	surface.EXPECT().CreateSurface(mock.Anything).Return(nil).Once()
	surface.EXPECT().Send(mock.Anything, port.CueMessage{Type: "play_sound", Sound: port.CueOn}).Return(nil).Once()

	player.Play(ctx, port.CueOn)

	clock.Advance(time.Second)
	surface.EXPECT().HasSurface(mock.Anything).Return(true, nil).Once()
	surface.EXPECT().Send(mock.Anything, port.CueMessage{Type: "play_sound", Sound: port.CueOff}).Return(nil).Once()

	player.Play(ctx, port.CueOff)
}

func TestCuePlayer_ThrottledCueTouchesNothing(t *testing.T) {
	ctx := testContext()
	surface := portmocks.NewMockCueSurface(t)
	player := usecase.NewCuePlayer(surface, usecase.NewCueThrottle(usecase.DefaultCueThrottle, newFakeClock()))

	surface.EXPECT().HasSurface(mock.Anything).Return(true, nil).Once()
	surface.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Once()

	player.Play(ctx, port.CueOn)
	player.Play(ctx, port.CueOff)
}

func TestCuePlayer_SendsEvenWhenCreateFails(t *testing.T) {
	ctx := testContext()
	surface := portmocks.NewMockCueSurface(t)
	player := usecase.NewCuePlayer(surface, nil)

	surface.EXPECT().HasSurface(mock.Anything).Return(false, nil).Once()
	surface.EXPECT().CreateSurface(mock.Anything).Return(errors.New("player missing")).Once()
	surface.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("no surface")).Once()

	player.Play(ctx, port.CueOn)
}

func TestCuePlayer_NilSurfaceIsSilent(t *testing.T) {
	var nilPlayer *usecase.CuePlayer
	nilPlayer.Play(testContext(), port.CueOn)

	usecase.NewCuePlayer(nil, nil).Play(testContext(), port.CueOn)
}
