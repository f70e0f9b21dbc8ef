// Package sample bundles a static briefing dataset. The dashboard falls back
// to it whenever the store is empty, so the Gemini key stays the only hard
// external dependency when crawling is skipped or blocked.
package sample

import (
	"time"

	"khidi-engine/internal/store"
)

func Briefings() []store.Briefing {
	now := time.Now()
	return []store.Briefing{
		{
			ID:       1,
			Title:    "2025년 바이오헬스 산업 글로벌 경쟁력 강화 전략",
			Source:   "보건산업브리프",
			Category: "R&D 정책",
			URL:      "https://www.khidi.or.kr/sample1",
			Content: `2025년 바이오헬스 산업은 글로벌 시장 규모 3조 달러를 돌파할 전망이다.
한국은 바이오시밀러 분야에서 세계 2위의 시장 점유율을 기록하고 있으며,
세포·유전자치료제 분야에서도 급성장하고 있다.

주요 정책 방향:
1. 바이오의약품 R&D 투자 확대 (연간 2조원 규모)
2. 규제 샌드박스를 통한 신속 인허가 지원
3. 글로벌 임상 네트워크 구축
4. 바이오 인력 양성 프로그램 확대

산업계 현황:
- 국내 바이오기업 수: 1,200개 이상
- 바이오헬스 수출액: 200억 달러 (전년 대비 15% 증가)
- R&D 투자 비중: 매출 대비 평균 12%`,
			CrawledAt: now,
		},
		{
			ID:       2,
			Title:    "디지털치료제(DTx) 산업 동향 및 정책 과제",
			Source:   "글로벌보건산업동향",
			Category: "R&D 정책",
			URL:      "https://www.khidi.or.kr/sample2",
			Content: `디지털치료제(Digital Therapeutics)는 소프트웨어를 기반으로 질병을 예방,
관리, 치료하는 새로운 의료 패러다임이다.

글로벌 시장 현황:
- 2025년 시장 규모: 89억 달러
- 연평균 성장률: 25.4%
- 주요 적용 분야: 정신건강, 당뇨관리, 호흡기질환

국내 현황 및 과제:
1. 국내 DTx 개발 기업: 50개 이상
2. 임상시험 진행 중인 제품: 30개 이상
3. 건강보험 급여 적용 논의 진행 중

정책 제언:
- DTx 전용 인허가 트랙 마련
- 의료데이터 활용 규제 완화
- 수가 체계 및 급여 기준 수립`,
			CrawledAt: now,
		},
		{
			ID:       3,
			Title:    "미국 FDA 의료기기 인허가 동향 분석",
			Source:   "글로벌보건산업동향",
			Category: "글로벌 진출",
			URL:      "https://www.khidi.or.kr/sample3",
			Content: `미국 FDA의 의료기기 인허가 정책 변화와 국내 기업의 대응 전략을 분석한다.

FDA 주요 정책 변화:
1. AI/ML 기반 의료기기 가이드라인 강화
2. 사이버보안 요구사항 의무화
3. Real-World Evidence 활용 확대
4. 510(k) 심사 현대화 프로그램

국내 기업 FDA 인허가 현황:
- 2024년 FDA 승인 획득: 45건
- 주요 승인 분야: 진단기기, AI 의료기기, 수술로봇

진출 전략 제언:
- 초기 단계부터 FDA 규제 고려한 개발
- Pre-submission 미팅 적극 활용
- 현지 RA 전문인력 확보`,
			CrawledAt: now,
		},
		{
			ID:       4,
			Title:    "의료기기 규제 샌드박스 운영 성과 및 개선 방향",
			Source:   "보건산업브리프",
			Category: "규제/법령",
			URL:      "https://www.khidi.or.kr/sample4",
			Content: `의료기기 규제 샌드박스는 혁신 의료기기의 신속한 시장 진입을 지원하는 제도이다.

운영 성과 (2020-2024):
- 신청 건수: 320건
- 승인 건수: 180건 (승인률 56%)
- 사업화 성공: 45건

주요 승인 사례:
1. AI 기반 의료영상 분석 소프트웨어
2. 웨어러블 건강 모니터링 기기
3. 원격의료 플랫폼

개선 과제:
- 심사 기간 단축 (현재 평균 6개월 → 3개월 목표)
- 임시허가 후 정식허가 전환율 제고
- 사후관리 체계 강화`,
			CrawledAt: now,
		},
		{
			ID:       5,
			Title:    "보건산업 인력 수급 전망 및 양성 전략",
			Source:   "뉴스레터",
			Category: "채용 분석",
			URL:      "https://www.khidi.or.kr/sample5",
			Content: `보건산업 분야의 인력 수급 현황과 미래 전망을 분석한다.

현재 인력 현황:
- 보건산업 종사자: 약 85만 명
- 연평균 증가율: 4.2%
- 인력 부족 분야: AI 헬스케어, 바이오 데이터, RA 전문가

2026년 수요 전망:
1. 디지털 헬스케어 전문가: 5,000명 추가 필요
2. 바이오 데이터 사이언티스트: 2,000명 추가 필요
3. 글로벌 RA 전문가: 1,500명 추가 필요

인력 양성 전략:
- 산학협력 프로그램 확대
- 재직자 역량 강화 교육
- 해외 우수 인력 유치`,
			CrawledAt: now,
		},
	}
}

// Filter narrows the sample set to one category, mirroring the category
// filter the store applies to real rows.
func Filter(briefings []store.Briefing, category string) []store.Briefing {
	if category == "" || category == store.CategoryAll {
		return briefings
	}
	var out []store.Briefing
	for _, b := range briefings {
		if b.Category == category {
			out = append(out, b)
		}
	}
	return out
}

// ByID finds a sample briefing by its fixed id.
func ByID(id int64) (store.Briefing, bool) {
	for _, b := range Briefings() {
		if b.ID == id {
			return b, true
		}
	}
	return store.Briefing{}, false
}
