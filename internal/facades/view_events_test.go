package facades

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/archive-viewer/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestViewEventKafkaFacade_PublishViewEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := NewMockKafkaWriter(ctrl)
	facade := NewViewEventKafkaFacade(mockWriter)

	event := models.ViewEvent{
		EventID:   "evt-1",
		Timestamp: 1700000000,
		UserID:    "u1",
		Username:  "adalovelace",
		View:      models.ViewCategory,
		Category:  models.BucketBooks,
	}

	t.Run("success", func(t *testing.T) {
		mockWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msgs ...kafka.Message) error {
				assert.Len(t, msgs, 1)
				assert.Equal(t, []byte("u1"), msgs[0].Key)

				var got models.ViewEvent
				assert.NoError(t, json.Unmarshal(msgs[0].Value, &got))
				assert.Equal(t, event, got)
				return nil
			})

		assert.NoError(t, facade.PublishViewEvent(context.Background(), event))
	})

	t.Run("writer error", func(t *testing.T) {
		mockWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))

		err := facade.PublishViewEvent(context.Background(), event)
		assert.EqualError(t, err, "broker unavailable")
	})

	t.Run("close", func(t *testing.T) {
		mockWriter.EXPECT().Close().Return(nil)
		assert.NoError(t, facade.Close())
	})
}

func TestViewEventKafkaFacade_NilWriter(t *testing.T) {
	facade := NewViewEventKafkaFacade(nil)

	assert.NoError(t, facade.PublishViewEvent(context.Background(), models.ViewEvent{EventID: "evt-1"}))
	assert.NoError(t, facade.Close())
}
