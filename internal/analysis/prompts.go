package analysis

import "fmt"

// The prompt wording stays in Korean: the generated reports imitate documents
// an actual KHIDI staffer would write.

const inbasketTemplate = `
당신은 한국보건산업진흥원(KHIDI) R&D 사업지원부문 3년 차 주임입니다.
아래 보건산업 관련 자료를 읽고, 입사 시험인 '인바스켓(In-Basket)' 답안 형식으로 분석 보고서를 작성하세요.

[자료 제목]: %s

[자료 내용]:
%s

---

다음 형식으로 작성하세요:

## 📋 현황 및 배경
(산업 수치, 정책 기조, 시장 동향을 2-3문장으로 요약)

## ⚠️ 핵심 문제점
(규제 장벽, 인력 부족, 기술 격차 등 주요 갈등 요소를 불릿 포인트로 3개 내외 도출)

## 💡 대응 방안
### 단기 (6개월 이내)
(KHIDI 실무자 관점에서 즉시 실행 가능한 방안 2개)

### 중기 (1-2년)
(정책 제안 또는 사업 기획 관점의 방안 2개)

## 📈 기대 효과
### 정량적 성과
(수치로 표현 가능한 예상 성과)

### 정성적 성과
(질적 개선 효과)

---
답변은 한국어로 작성하고, 실제 KHIDI 직원이 작성한 것처럼 전문적이고 구체적으로 작성하세요.
`

const forecastPrompt = `
당신은 한국보건산업진흥원(KHIDI) 인사담당 전문가입니다.
2025년 보건산업 백서, 디지털헬스케어 정책 동향, 바이오헬스 산업 전략을 기반으로
2026년 KHIDI에서 신규 채용이 예상되는 유망 직무를 예측해주세요.

다음 형식으로 작성하세요:

## 🔮 2026년 KHIDI 유망 채용 직무 예측

### 1순위: [직무명]
- **예상 부서**:
- **필요 역량**:
- **채용 근거**: (어떤 정책/산업 트렌드 때문인지)

### 2순위: [직무명]
- **예상 부서**:
- **필요 역량**:
- **채용 근거**:

### 3순위: [직무명]
- **예상 부서**:
- **필요 역량**:
- **채용 근거**:

### 📚 취업 준비 TIP
(해당 직무 준비를 위한 구체적인 조언 3가지)

한국어로 작성하고, 실제 보건산업 트렌드를 반영하여 현실적으로 작성하세요.
`

func inbasketPrompt(title, content string) string {
	return fmt.Sprintf(inbasketTemplate, title, content)
}
