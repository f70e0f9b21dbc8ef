package store

import (
	"context"
	"fmt"
	"time"
)

type Recruitment struct {
	ID           int64  `json:"id"`
	Year         int    `json:"year"`
	Position     string `json:"position"`
	Department   string `json:"department"`
	Requirements string `json:"requirements"`
	Skills       string `json:"skills"`
	HiredCount   int    `json:"hiredCount"`
}

type YearStat struct {
	Year      int `json:"year"`
	Positions int `json:"positions"`
	Hired     int `json:"hired"`
}

// seedRecruitments is the static 2021-2025 KHIDI hiring archive shown on the
// recruitment tab. Inserted once; never touched at runtime afterwards.
var seedRecruitments = []Recruitment{
	{Year: 2021, Position: "보건산업 정책연구원", Department: "정책연구본부", Requirements: "석사 이상, 보건정책 전공", Skills: "정책분석, 통계분석, 보고서 작성", HiredCount: 3},
	{Year: 2021, Position: "R&D 사업관리", Department: "R&D사업본부", Requirements: "학사 이상, 이공계열", Skills: "사업관리, 예산편성, 성과평가", HiredCount: 5},
	{Year: 2021, Position: "행정지원", Department: "경영지원본부", Requirements: "학사 이상", Skills: "문서관리, 회계, 인사", HiredCount: 2},

	{Year: 2022, Position: "바이오헬스 사업관리", Department: "바이오헬스산업본부", Requirements: "학사 이상, 생명과학/의공학", Skills: "임상시험 관리, 인허가 지원", HiredCount: 4},
	{Year: 2022, Position: "글로벌 진출 지원", Department: "해외사업본부", Requirements: "학사 이상, 영어 능통", Skills: "해외시장 조사, 수출 지원", HiredCount: 3},
	{Year: 2022, Position: "데이터 분석가", Department: "정책연구본부", Requirements: "석사 이상, 통계/데이터사이언스", Skills: "빅데이터 분석, AI 모델링", HiredCount: 2},

	{Year: 2023, Position: "디지털헬스케어 PM", Department: "디지털헬스본부", Requirements: "학사 이상, IT/의료 융합", Skills: "디지털치료제, AI의료기기 관리", HiredCount: 6},
	{Year: 2023, Position: "규제혁신 전문가", Department: "규제혁신팀", Requirements: "학사 이상, 법학/보건학", Skills: "규제샌드박스, 인허가 컨설팅", HiredCount: 2},
	{Year: 2023, Position: "의료기기 사업관리", Department: "의료기기본부", Requirements: "학사 이상, 의공학/기계공학", Skills: "의료기기 인증, 품질관리", HiredCount: 4},

	{Year: 2024, Position: "바이오의약품 PM", Department: "바이오의약품본부", Requirements: "석사 이상, 약학/생명과학", Skills: "바이오시밀러, 세포치료제 관리", HiredCount: 5},
	{Year: 2024, Position: "AI 헬스케어 전문가", Department: "디지털헬스본부", Requirements: "석사 이상, AI/ML 전공", Skills: "AI 진단, 디지털바이오마커", HiredCount: 3},
	{Year: 2024, Position: "글로벌 임상 지원", Department: "해외사업본부", Requirements: "학사 이상, 임상 경험자", Skills: "글로벌 임상시험, FDA/EMA 대응", HiredCount: 2},
	{Year: 2024, Position: "ESG 경영 담당", Department: "경영지원본부", Requirements: "학사 이상", Skills: "ESG 전략, 지속가능경영 보고서", HiredCount: 1},

	{Year: 2025, Position: "첨단바이오 사업관리", Department: "첨단바이오본부", Requirements: "석사 이상, 유전체학/합성생물학", Skills: "유전자치료, mRNA 플랫폼", HiredCount: 4},
	{Year: 2025, Position: "디지털치료제 PM", Department: "디지털헬스본부", Requirements: "학사 이상, SW/의료 융합", Skills: "DTx 인허가, 임상 설계", HiredCount: 3},
	{Year: 2025, Position: "보건안보 전문가", Department: "보건안보팀", Requirements: "석사 이상, 공중보건/감염병", Skills: "팬데믹 대응, 백신 수급", HiredCount: 2},
	{Year: 2025, Position: "메디컬 라이터", Department: "정책연구본부", Requirements: "석사 이상, 의학/약학", Skills: "보건산업 백서, 정책보고서", HiredCount: 2},
}

// SeedRecruitments inserts the static hiring archive. No-op when any row
// already exists, so calling it on every startup is safe.
func (d *DB) SeedRecruitments(ctx context.Context) error {
	db := d.conn()

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recruitments;`).Scan(&count); err != nil {
		return fmt.Errorf("count recruitments: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, r := range seedRecruitments {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO recruitments(year, position, department, requirements, skills, hired_count, created_at)
VALUES(?,?,?,?,?,?,?);`,
			r.Year, r.Position, r.Department, r.Requirements, r.Skills, r.HiredCount, now,
		); err != nil {
			return fmt.Errorf("seed recruitment %d/%s: %w", r.Year, r.Position, err)
		}
	}

	return tx.Commit()
}

// ListRecruitments returns the hiring archive ordered by year descending then
// position ascending. year 0 means all years.
func (d *DB) ListRecruitments(ctx context.Context, year int) ([]Recruitment, error) {
	query := `
SELECT id, year, position, department, requirements, skills, hired_count
FROM recruitments
ORDER BY year DESC, position ASC;`
	args := []any{}

	if year > 0 {
		query = `
SELECT id, year, position, department, requirements, skills, hired_count
FROM recruitments
WHERE year = ?
ORDER BY year DESC, position ASC;`
		args = []any{year}
	}

	rows, err := d.conn().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Recruitment
	for rows.Next() {
		var r Recruitment
		if err := rows.Scan(&r.ID, &r.Year, &r.Position, &r.Department, &r.Requirements, &r.Skills, &r.HiredCount); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// RecruitmentStats aggregates headcount and position counts per year for the
// dashboard metric cards.
func (d *DB) RecruitmentStats(ctx context.Context) ([]YearStat, error) {
	rows, err := d.conn().QueryContext(ctx, `
SELECT year, COUNT(*), SUM(hired_count)
FROM recruitments
GROUP BY year
ORDER BY year DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []YearStat
	for rows.Next() {
		var s YearStat
		if err := rows.Scan(&s.Year, &s.Positions, &s.Hired); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
