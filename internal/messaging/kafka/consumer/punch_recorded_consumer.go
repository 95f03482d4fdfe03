package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pedrodese/Check-Time/internal/events"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const punchCounterTTL = 45 * 24 * time.Hour

// ConsumePunchRecorded keeps per-day punch counters in Redis, keyed by
// date and record type. Counting is idempotent enough for dashboards;
// a redelivered message at worst bumps a counter twice.
func ConsumePunchRecorded(
	ctx context.Context,
	reader *kafkago.Reader,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.punch_recorded")
	log.Info("punch recorded consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("punch recorded consumer stopped")
				return
			}
			log.Error("fetch punch recorded message failed", zap.Error(err))
			continue
		}

		var event events.PunchRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode punch_recorded event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		key := fmt.Sprintf("punches:%s:%s", event.Date, event.RecordType)
		pipe := rdb.TxPipeline()
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, punchCounterTTL)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Error("increment punch counter failed",
				zap.String("key", key),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit punch recorded message failed", zap.Error(err))
			continue
		}

		log.Info("punch counted",
			zap.String("record_id", event.RecordID),
			zap.String("date", event.Date),
			zap.String("type", event.RecordType),
		)
	}
}
