package cache

import (
	"time"
)

// TimeUntilNextRefresh は loc における次の hour 時ちょうどまでの期間を返します。
// 結果は常に正で、24時間を超えません（夏時間の切り替え日を除く）。
func TimeUntilNextRefresh(now time.Time, hour int, loc *time.Location) time.Duration {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)

	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, loc)

	// 今日の更新時刻を過ぎている（または同時刻の）場合は翌日を使用
	if !now.Before(next) {
		next = time.Date(now.Year(), now.Month(), now.Day()+1, hour, 0, 0, 0, loc)
	}

	return next.Sub(now)
}
