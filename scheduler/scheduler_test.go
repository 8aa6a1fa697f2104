package scheduler

import (
	"testing"
	"time"
)

func TestGetNextTimePoint(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.Local)

	// 当天的时间点未过
	next := getNextTimePoint(now, 15, 30)
	if next.Day() != 30 || next.Hour() != 15 || next.Minute() != 30 {
		t.Errorf("next = %v", next)
	}

	// 当天的时间点已过，顺延到第二天
	next = getNextTimePoint(now, 9, 0)
	if next.Day() != 31 || next.Hour() != 9 {
		t.Errorf("next = %v", next)
	}
}

func TestValidateHourMinute(t *testing.T) {
	h, m := validateHourMinute(9, 30)
	if h != 9 || m != 30 {
		t.Errorf("合法值被改写: %d:%d", h, m)
	}

	h, m = validateHourMinute(25, 70)
	if h != 0 || m != 0 {
		t.Errorf("非法值应回落到0:0, got %d:%d", h, m)
	}

	h, _ = validateHourMinute(-1, 15)
	if h != 0 {
		t.Errorf("负数小时应回落到0, got %d", h)
	}
}
