package invoicenotification

import (
	"context"
	"testing"
	"time"

	kafkacommon "github.com/habitado/go-condo-billing/internal/common/kafka"
	"github.com/habitado/go-condo-billing/internal/services"
	"github.com/habitado/go-condo-billing/internal/services/mock"

	kafkamock "github.com/habitado/go-condo-billing/internal/deliveries/consumer/kafka/mock"

	"github.com/Shopify/sarama"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type invoiceNotificationHandlerHelper struct {
	mockCtrl *gomock.Controller
	is       *mock.MockInvoiceService
	dp       *mock.MockDLQProcessorService

	payload []byte
}

func newInvoiceNotificationHandlerHelper(t *testing.T) invoiceNotificationHandlerHelper {
	t.Helper()
	t.Parallel()

	mockCtrl := gomock.NewController(t)

	is := mock.NewMockInvoiceService(mockCtrl)
	dp := mock.NewMockDLQProcessorService(mockCtrl)

	payload := []byte(`{"eventType":"invoice.paid","invoiceNumber":"INV-0001","unitId":"UNT-1","condoId":"CND-1","referenceMonth":"2024-06","amount":"850.00"}`)

	return invoiceNotificationHandlerHelper{
		mockCtrl: mockCtrl,
		is:       is,
		dp:       dp,
		payload:  payload,
	}
}

func (th invoiceNotificationHandlerHelper) newHandler() InvoiceNotificationHandler {
	return InvoiceNotificationHandler{
		BaseHandler: kafkacommon.BaseHandler{
			LogPrefix: logMessage,
		},
		is: th.is,
		dp: th.dp,
	}
}

func TestNewInvoiceNotificationHandler(t *testing.T) {
	th := newInvoiceNotificationHandlerHelper(t)
	defer th.mockCtrl.Finish()

	type args struct {
		is services.InvoiceService
		dp services.DLQProcessorService
	}
	tests := []struct {
		name string
		args args
	}{
		{
			name: "success init InvoiceNotificationHandler",
			args: args{
				is: th.is,
				dp: th.dp,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewInvoiceNotificationHandler("", tt.args.is, tt.args.dp, nil)
			assert.NotNil(t, got)
		})
	}
}

func TestInvoiceNotificationHandler_Setup(t *testing.T) {
	th := newInvoiceNotificationHandlerHelper(t)
	defer th.mockCtrl.Finish()

	h := th.newHandler()
	assert.NoError(t, h.Setup(nil))
}

func TestInvoiceNotificationHandler_Cleanup(t *testing.T) {
	th := newInvoiceNotificationHandlerHelper(t)
	defer th.mockCtrl.Finish()

	h := th.newHandler()
	assert.NoError(t, h.Cleanup(nil))
}

func TestInvoiceNotificationHandler_processMessage(t *testing.T) {
	th := newInvoiceNotificationHandlerHelper(t)
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
			name: "success handle message",
			args: args{
				ctx: context.Background(),
				message: &sarama.ConsumerMessage{
					Value: th.payload,
				},
			},
			doMock: func(a args) {
				th.is.EXPECT().
					NotifyEvent(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "error marshall message",
			args: args{
				ctx: context.Background(),
				message: &sarama.ConsumerMessage{
					Value: []byte("{__INVALID_JSON_HERE"),
				},
			},
			wantErr: true,
		},
		{
			name: "error notify invoice event",
			args: args{
				ctx: context.Background(),
				message: &sarama.ConsumerMessage{
					Value: th.payload,
				},
			},
			doMock: func(a args) {
				th.is.EXPECT().
					NotifyEvent(gomock.Any(), gomock.Any()).
					Return(assert.AnError)
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

func TestInvoiceNotificationHandler_ConsumeClaim(t *testing.T) {
	th := newInvoiceNotificationHandlerHelper(t)
	defer th.mockCtrl.Finish()

	type fields struct {
		is        *mock.MockInvoiceService
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
				is:  mock.NewMockInvoiceService(th.mockCtrl),
				dp:  mock.NewMockDLQProcessorService(th.mockCtrl),
				msg: make(chan *sarama.ConsumerMessage, 1),
			},
			args: args{
				session: kafkamock.NewMockConsumerGroupSession(th.mockCtrl),
				claim:   kafkamock.NewMockConsumerGroupClaim(th.mockCtrl),
			},
			doMock: func(a args, f fields) {
				f.msg <- &sarama.ConsumerMessage{
					Value: th.payload,
				}

				a.claim.EXPECT().Messages().Return(f.msg).AnyTimes()
				a.session.EXPECT().Context().Return(f.ctx).AnyTimes()
				a.session.EXPECT().MarkMessage(gomock.Any(), gomock.Any()).AnyTimes()
				f.is.EXPECT().NotifyEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "failed message raises ops alert and is acked",
			fields: fields{
				is:  mock.NewMockInvoiceService(th.mockCtrl),
				dp:  mock.NewMockDLQProcessorService(th.mockCtrl),
				msg: make(chan *sarama.ConsumerMessage, 1),
			},
			args: args{
				session: kafkamock.NewMockConsumerGroupSession(th.mockCtrl),
				claim:   kafkamock.NewMockConsumerGroupClaim(th.mockCtrl),
			},
			doMock: func(a args, f fields) {
				f.msg <- &sarama.ConsumerMessage{
					Value: th.payload,
				}

				f.is.EXPECT().NotifyEvent(gomock.Any(), gomock.Any()).Return(assert.AnError).AnyTimes()
				f.dp.EXPECT().SendNotificationInvoiceEventFailure(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

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

			h := InvoiceNotificationHandler{
				BaseHandler: kafkacommon.BaseHandler{
					LogPrefix: logMessage,
				},
				is: tt.fields.is,
				dp: tt.fields.dp,
			}

			err := h.ConsumeClaim(tt.args.session, tt.args.claim)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
