package eventbus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/classhub/classhub/pkg/logging"
)

type courseCreated struct {
	title string
}

type courseArchived struct {
	title string
}

func TestPublisher_Subscribe(t *testing.T) {
	publisher := NewEventPublisher(logging.ConsoleLogger(logrus.WarnLevel))
	var got string
	publisher.Subscribe(func(e courseCreated) {
		got = e.title
	})
	publisher.Publish(courseCreated{title: "Intro to Go"})
	assert.Equal(t, "Intro to Go", got)
}

func TestPublisher_TypeDispatch(t *testing.T) {
	publisher := NewEventPublisher(logging.ConsoleLogger(logrus.WarnLevel))
	created := 0
	archived := 0
	publisher.Subscribe(func(e courseCreated) { created++ })
	publisher.Subscribe(func(e courseArchived) { archived++ })

	publisher.Publish(courseCreated{title: "a"})
	publisher.Publish(courseCreated{title: "b"})
	publisher.Publish(courseArchived{title: "a"})

	assert.Equal(t, 2, created)
	assert.Equal(t, 1, archived)
}

func TestPublisher_Unsubscribe(t *testing.T) {
	publisher := NewEventPublisher(logging.ConsoleLogger(logrus.WarnLevel))
	called := false
	handler := func(e courseCreated) { called = true }
	publisher.Subscribe(handler)
	assert.Equal(t, 1, publisher.SubscribersCount())

	publisher.Unsubscribe(handler)
	assert.Equal(t, 0, publisher.SubscribersCount())

	publisher.Publish(courseCreated{title: "x"})
	assert.False(t, called)
}

func TestPublisher_PanicRecovery(t *testing.T) {
	publisher := NewEventPublisher(logging.ConsoleLogger(logrus.PanicLevel))
	secondCalled := false
	publisher.Subscribe(func(e courseCreated) { panic("boom") })
	publisher.Subscribe(func(e courseCreated) { secondCalled = true })

	assert.NotPanics(t, func() {
		publisher.Publish(courseCreated{title: "x"})
	})
	assert.True(t, secondCalled)
}

func TestMatchSignature(t *testing.T) {
	assert.True(t, MatchSignature(func(e courseCreated) {}, []interface{}{courseCreated{}}))
	assert.False(t, MatchSignature(func(e courseCreated) {}, []interface{}{courseArchived{}}))
	assert.False(t, MatchSignature(func(e courseCreated) {}, []interface{}{courseCreated{}, courseCreated{}}))
	assert.False(t, MatchSignature("not a func", []interface{}{courseCreated{}}))
}
