package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// RoundRecord is one finished or abandoned round.
type RoundRecord struct {
	RoundID    string
	Sequence   int64
	Table      int // 0 for a mixed challenge
	Questions  int // questions answered
	Correct    int
	Score      int
	MaxStreak  int
	Completed  bool
	Duration   time.Duration
	FinishedAt time.Time
}

// AnswerRecord is a single answered question within a round.
type AnswerRecord struct {
	Sequence      int64
	RoundID       string
	Num1          int
	Num2          int
	CorrectAnswer int
	GivenAnswer   int
	Correct       bool
	Points        int
}

// RoundRepo records rounds played during this run of the game.
type RoundRepo interface {
	// AppendRound stores a round once it completes or is abandoned.
	AppendRound(ctx context.Context, rec RoundRecord) error

	// AppendAnswer stores one answered question.
	AppendAnswer(ctx context.Context, rec AnswerRecord) error

	// RecentRounds returns up to limit rounds, newest first (0 = unlimited).
	RecentRounds(ctx context.Context, limit int) ([]RoundRecord, error)

	// RoundAnswers returns the answers for a round in the order given.
	RoundAnswers(ctx context.Context, roundID string) ([]AnswerRecord, error)

	// BestScore returns the highest completed-round score for table. The
	// second result is false when no completed round exists.
	BestScore(ctx context.Context, table int) (int, bool, error)
}

type roundRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

var roundColumns = []string{
	"round_id", "sequence", "table_num", "questions", "correct",
	"score", "max_streak", "completed", "duration_ms", "finished_at",
}

var answerColumns = []string{
	"sequence", "round_id", "num1", "num2", "correct_answer",
	"given_answer", "correct", "points",
}

func (r *roundRepo) AppendRound(ctx context.Context, rec RoundRecord) error {
	if rec.RoundID == "" {
		return fmt.Errorf("append round: empty round id")
	}
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	if rec.FinishedAt.IsZero() {
		rec.FinishedAt = time.Now()
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(RoundsTable.Name).
		Columns(roundColumns...).
		Values(rec.RoundID, seqNum, rec.Table, rec.Questions, rec.Correct, rec.Score,
			rec.MaxStreak, rec.Completed, rec.Duration.Milliseconds(), rec.FinishedAt.UnixMilli()).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save round: %w", err)
	}
	return nil
}

func (r *roundRepo) AppendAnswer(ctx context.Context, rec AnswerRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(AnswersTable.Name).
		Columns(answerColumns...).
		Values(seqNum, rec.RoundID, rec.Num1, rec.Num2, rec.CorrectAnswer, rec.GivenAnswer,
			rec.Correct, rec.Points).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save answer: %w", err)
	}
	return nil
}

func (r *roundRepo) RecentRounds(ctx context.Context, limit int) ([]RoundRecord, error) {
	selector := entsql.Dialect(dialect.SQLite).
		Select(roundColumns...).
		From(entsql.Table(RoundsTable.Name)).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		selector.Limit(limit)
	}

	rows := &entsql.Rows{}
	query, args := selector.Query()
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query rounds: %w", err)
	}
	defer rows.Close()

	var out []RoundRecord
	for rows.Next() {
		var (
			rec        RoundRecord
			durationMs int64
			finishedMs int64
		)
		if err := rows.Scan(&rec.RoundID, &rec.Sequence, &rec.Table, &rec.Questions, &rec.Correct,
			&rec.Score, &rec.MaxStreak, &rec.Completed, &durationMs, &finishedMs); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		rec.Duration = time.Duration(durationMs) * time.Millisecond
		rec.FinishedAt = time.UnixMilli(finishedMs)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query rounds: %w", err)
	}
	return out, nil
}

func (r *roundRepo) RoundAnswers(ctx context.Context, roundID string) ([]AnswerRecord, error) {
	rows := &entsql.Rows{}
	query, args := entsql.Dialect(dialect.SQLite).
		Select(answerColumns...).
		From(entsql.Table(AnswersTable.Name)).
		Where(entsql.EQ("round_id", roundID)).
		OrderBy("sequence").
		Query()
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var out []AnswerRecord
	for rows.Next() {
		var rec AnswerRecord
		if err := rows.Scan(&rec.Sequence, &rec.RoundID, &rec.Num1, &rec.Num2, &rec.CorrectAnswer,
			&rec.GivenAnswer, &rec.Correct, &rec.Points); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	return out, nil
}

func (r *roundRepo) BestScore(ctx context.Context, table int) (int, bool, error) {
	rows := &entsql.Rows{}
	query, args := entsql.Dialect(dialect.SQLite).
		Select(entsql.Max("score")).
		From(entsql.Table(RoundsTable.Name)).
		Where(entsql.And(
			entsql.EQ("table_num", table),
			entsql.EQ("completed", true),
		)).
		Query()
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return 0, false, fmt.Errorf("query best score: %w", err)
	}
	defer rows.Close()

	var best sql.NullInt64
	if rows.Next() {
		if err := rows.Scan(&best); err != nil {
			return 0, false, fmt.Errorf("scan best score: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, false, fmt.Errorf("query best score: %w", err)
	}
	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}

// Tally summarizes the round log for display.
type Tally struct {
	Rounds int // every recorded round, abandoned ones included
	Best   int // highest completed-round score across all tables
}

// TallyRounds counts the rounds in repo and finds the best completed score.
func TallyRounds(ctx context.Context, repo RoundRepo) (Tally, error) {
	recent, err := repo.RecentRounds(ctx, 0)
	if err != nil {
		return Tally{}, fmt.Errorf("tally rounds: %w", err)
	}
	t := Tally{Rounds: len(recent)}
	for _, r := range recent {
		if r.Completed && r.Score > t.Best {
			t.Best = r.Score
		}
	}
	return t, nil
}
