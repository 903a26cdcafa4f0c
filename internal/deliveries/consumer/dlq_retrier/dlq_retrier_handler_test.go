package dlqretrier

import (
	"context"
	"testing"
	"time"

	"github.com/habitado/go-condo-billing/internal/config"
	"github.com/habitado/go-condo-billing/internal/services/mock"

	kafkamock "github.com/habitado/go-condo-billing/internal/deliveries/consumer/kafka/mock"

	"github.com/Shopify/sarama"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testDLQTopic = "billing.reconciliation.dlq"

type dlqRetrierHandlerHelper struct {
	mockCtrl    *gomock.Controller
	dp          *mock.MockDLQProcessorService
	consumerCfg config.ConsumerConfig

	payload []byte
}

func newDLQRetrierHandlerHelper(t *testing.T) dlqRetrierHandlerHelper {
	t.Helper()
	t.Parallel()

	mockCtrl := gomock.NewController(t)

	dp := mock.NewMockDLQProcessorService(mockCtrl)

	payload := []byte(`{"payload":"eyJpZCI6IlJVTi0xIiwidGFzayI6IlJFQ09OQ0lMRV9GSUxFIn0=","timestamp":"2023-10-25T08:08:26Z","error":"boom"}`)

	return dlqRetrierHandlerHelper{
		mockCtrl: mockCtrl,
		dp:       dp,
		consumerCfg: config.ConsumerConfig{
			TopicReconciliationDLQ: testDLQTopic,
		},
		payload: payload,
	}
}

func (th dlqRetrierHandlerHelper) newHandler() DLQRetrierHandler {
	return DLQRetrierHandler{
		dp:          th.dp,
		consumerCfg: th.consumerCfg,
	}
}

func TestNewRetrierHandler(t *testing.T) {
	th := newDLQRetrierHandlerHelper(t)
	defer th.mockCtrl.Finish()

	got := NewRetrierHandler("", th.dp, th.consumerCfg, nil)
	assert.NotNil(t, got)
}

func TestDLQRetrierHandler_Setup(t *testing.T) {
	th := newDLQRetrierHandlerHelper(t)
	defer th.mockCtrl.Finish()

	h := th.newHandler()
	assert.NoError(t, h.Setup(nil))
}

func TestDLQRetrierHandler_Cleanup(t *testing.T) {
	th := newDLQRetrierHandlerHelper(t)
	defer th.mockCtrl.Finish()

	h := th.newHandler()
	assert.NoError(t, h.Cleanup(nil))
}

func TestDLQRetrierHandler_processMessage(t *testing.T) {
	th := newDLQRetrierHandlerHelper(t)
	defer th.mockCtrl.Finish()

	type args struct {
		ctx     context.Context
		message *sarama.ConsumerMessage
	}

	tests := []struct {
		name    string
		args    args
		doMock  func(a args)
		wantErr bool
	}{
		{
			name: "success retry reconciliation task",
			args: args{
				ctx: context.Background(),
				message: &sarama.ConsumerMessage{
					Topic: testDLQTopic,
					Value: th.payload,
				},
			},
			doMock: func(a args) {
				th.dp.EXPECT().RetryReconciliationTask(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "error marshall message",
			args: args{
				ctx: context.Background(),
				message: &sarama.ConsumerMessage{
					Topic: testDLQTopic,
					Value: []byte("{__INVALID_JSON_HERE"),
				},
			},
			wantErr: true,
		},
		{
			name: "error retry escalates to ops alert",
			args: args{
				ctx: context.Background(),
				message: &sarama.ConsumerMessage{
					Topic: testDLQTopic,
					Value: th.payload,
				},
			},
			doMock: func(a args) {
				th.dp.EXPECT().RetryReconciliationTask(gomock.Any(), gomock.Any()).Return(assert.AnError)
				th.dp.EXPECT().SendNotificationRetryFailure(gomock.Any(), "retry reconciliation task", gomock.Any()).Return(nil)
			},
			wantErr: true,
		},
		{
			name: "unknown topic",
			args: args{
				ctx: context.Background(),
				message: &sarama.ConsumerMessage{
					Topic: "some.other.topic",
					Value: th.payload,
				},
			},
			doMock: func(a args) {
				th.dp.EXPECT().SendNotificationRetryFailure(gomock.Any(), "retry reconciliation task", gomock.Any()).Return(nil)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			h := th.newHandler()
			err := h.processMessage(tt.args.ctx, tt.args.message)
			assert.Equal(t, tt.wantErr, err != nil, err)
		})
	}
}

func TestDLQRetrierHandler_ConsumeClaim(t *testing.T) {
	th := newDLQRetrierHandlerHelper(t)
	defer th.mockCtrl.Finish()

	type fields struct {
		dp        *mock.MockDLQProcessorService
		ctx       context.Context
		ctxCancel context.CancelFunc
		msg       chan *sarama.ConsumerMessage
	}

	type args struct {
		session *kafkamock.MockConsumerGroupSession
		claim   *kafkamock.MockConsumerGroupClaim
	}
	tests := []struct {
		name    string
		fields  fields
		args    args
		doMock  func(a args, f fields)
		wantErr bool
	}{
		{
			name: "success consume message",
			fields: fields{
				dp:  mock.NewMockDLQProcessorService(th.mockCtrl),
				msg: make(chan *sarama.ConsumerMessage, 1),
			},
			args: args{
				session: kafkamock.NewMockConsumerGroupSession(th.mockCtrl),
				claim:   kafkamock.NewMockConsumerGroupClaim(th.mockCtrl),
			},
			doMock: func(a args, f fields) {
				f.msg <- &sarama.ConsumerMessage{
					Topic: testDLQTopic,
					Value: th.payload,
				}

				a.claim.EXPECT().Messages().Return(f.msg).AnyTimes()
				a.session.EXPECT().Context().Return(f.ctx).AnyTimes()
				a.session.EXPECT().MarkMessage(gomock.Any(), gomock.Any()).AnyTimes()
				f.dp.EXPECT().RetryReconciliationTask(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "failed consume message",
			fields: fields{
				dp:  mock.NewMockDLQProcessorService(th.mockCtrl),
				msg: make(chan *sarama.ConsumerMessage, 1),
			},
			args: args{
				session: kafkamock.NewMockConsumerGroupSession(th.mockCtrl),
				claim:   kafkamock.NewMockConsumerGroupClaim(th.mockCtrl),
			},
			doMock: func(a args, f fields) {
				f.msg <- &sarama.ConsumerMessage{
					Topic: testDLQTopic,
					Value: th.payload,
				}

				f.dp.EXPECT().RetryReconciliationTask(gomock.Any(), gomock.Any()).Return(assert.AnError).AnyTimes()
				f.dp.EXPECT().SendNotificationRetryFailure(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

				a.claim.EXPECT().Messages().Return(f.msg).AnyTimes()
				a.session.EXPECT().Context().Return(f.ctx).AnyTimes()
				a.session.EXPECT().MarkMessage(gomock.Any(), gomock.Any()).AnyTimes()
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields.ctx, tt.fields.ctxCancel = context.WithTimeout(context.Background(), 1*time.Second)
			defer tt.fields.ctxCancel()

			if tt.doMock != nil {
				tt.doMock(tt.args, tt.fields)
			}

			h := DLQRetrierHandler{
				dp:          tt.fields.dp,
				consumerCfg: th.consumerCfg,
			}

			err := h.ConsumeClaim(tt.args.session, tt.args.claim)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
