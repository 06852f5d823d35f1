package catalog

// Category IDs, exported for cross-layer reference (event payloads, tests,
// metric labels).
const (
	WorkplaceHarassment = "workplace_harassment"
	Divorce             = "divorce"
	WageTheft           = "wage_theft"
	RealEstate          = "real_estate"
	TrafficAccident     = "traffic_accident"
	Defamation          = "defamation"
	Fraud               = "fraud"
)

// categories is the catalog in declaration order.  Declaration order is part
// of the contract: it is the deterministic tie-break when two categories have
// equal match counts.
var categories = []CaseCategory{
	{
		ID:             WorkplaceHarassment,
		Name:           "직장 내 괴롭힘",
		LawReference:   "근로기준법 제76조의2",
		ParentCategory: "labor",
		Keywords: []string{
			"괴롭힘", "폭언", "욕설", "상사", "팀장", "부장", "회식", "강요",
			"모욕", "무시", "왕따", "따돌림", "업무배제", "과도한 업무",
			"야근 강요", "인격모독", "성희롱", "갑질",
		},
		BaseWinRate:       72,
		BaseCost:          CostBand{Min: 150, Max: 350},
		PlatformCaseCount: 127,
		Description:       "상사의 폭언 및 공개적인 모욕 행위는 근로기준법 제76조의2 위반 소지가 다분하며, 특히 \"반복성\"과 \"고의성\"이 입증될 경우 위자료 청구가 가능할 것으로 보입니다.",
		KeyFindings: []string{
			"공개적인 욕설/모욕 (명예훼손 성립 가능)",
			"업무 시간 외 지속적인 지시 (사생활 침해)",
			"인사 고과 불이익 협박 (직권 남용)",
		},
		SampleExperts: []ExpertRecord{
			{Name: "김철수", Specialty: "노동법 전문", ResolvedCases: 15, Rating: 4.9},
			{Name: "이영희", Specialty: "직장 내 괴롭힘 전문", ResolvedCases: 23, Rating: 5.0},
			{Name: "박민수", Specialty: "노동분쟁", ResolvedCases: 8, Rating: 4.8},
		},
	},
	{
		ID:             Divorce,
		Name:           "이혼",
		LawReference:   "민법 제840조",
		ParentCategory: "family",
		Keywords: []string{
			"이혼", "별거", "배우자", "남편", "아내", "양육권", "위자료",
			"재산분할", "외도", "불륜", "바람", "가정폭력", "생활비",
			"혼인파탄", "냉각기", "협의이혼", "소송이혼",
		},
		BaseWinRate:       65,
		BaseCost:          CostBand{Min: 200, Max: 500},
		PlatformCaseCount: 89,
		Description:       "혼인을 계속하기 어려운 중대한 사유가 인정되면 민법 제840조에 따라 이혼 청구가 가능합니다. 재산분할, 위자료, 양육권 문제를 종합적으로 검토해야 합니다.",
		KeyFindings: []string{
			"혼인 파탄 사유 확인 (외도/가정폭력 등)",
			"재산분할 대상 자산 파악",
			"자녀 양육권 및 양육비 협의 필요",
		},
		SampleExperts: []ExpertRecord{
			{Name: "정미영", Specialty: "가사소송 전문", ResolvedCases: 31, Rating: 4.9},
			{Name: "최준호", Specialty: "이혼/양육권", ResolvedCases: 18, Rating: 4.7},
			{Name: "강수진", Specialty: "재산분할", ResolvedCases: 12, Rating: 4.8},
		},
	},
	{
		ID:             WageTheft,
		Name:           "임금 체불",
		LawReference:   "근로기준법 제36조, 제43조",
		ParentCategory: "labor",
		Keywords: []string{
			"임금", "월급", "급여", "체불", "미지급", "퇴직금", "야근수당",
			"초과근무", "최저임금", "연봉", "삭감", "밀린 월급", "프리랜서",
			"알바", "아르바이트",
		},
		BaseWinRate:       85,
		BaseCost:          CostBand{Min: 100, Max: 250},
		PlatformCaseCount: 203,
		Description:       "임금 지급은 사용자의 가장 기본적인 의무입니다. 근로기준법 위반으로 노동청 진정 및 민사 청구가 가능하며, 지연 이자도 청구할 수 있습니다.",
		KeyFindings: []string{
			"미지급 임금/퇴직금 금액 산정",
			"근로계약서 및 급여명세서 확보",
			"지연 이자(연 20%) 청구 가능",
		},
		SampleExperts: []ExpertRecord{
			{Name: "한동훈", Specialty: "임금체불 전문", ResolvedCases: 45, Rating: 4.9},
			{Name: "윤서연", Specialty: "노동청 진정", ResolvedCases: 28, Rating: 4.8},
			{Name: "김태희", Specialty: "근로계약 분쟁", ResolvedCases: 19, Rating: 4.7},
		},
	},
	{
		ID:             RealEstate,
		Name:           "부동산 분쟁",
		LawReference:   "주택임대차보호법",
		ParentCategory: "property",
		Keywords: []string{
			"전세", "월세", "보증금", "집주인", "임대인", "세입자", "임차인",
			"계약", "명도", "퇴거", "연체", "하자", "누수", "수리", "중개",
			"복비", "사기",
		},
		BaseWinRate:       70,
		BaseCost:          CostBand{Min: 150, Max: 400},
		PlatformCaseCount: 156,
		Description:       "주택임대차보호법에 의해 임차인의 권리가 보호됩니다. 보증금 반환, 계약 갱신, 하자 수리 등의 분쟁 해결이 가능합니다.",
		KeyFindings: []string{
			"임대차계약서 및 전입신고 확인",
			"보증금 반환 청구권 행사 가능",
			"내용증명 발송 후 법적 절차 진행",
		},
		SampleExperts: []ExpertRecord{
			{Name: "오세훈", Specialty: "부동산 소송", ResolvedCases: 22, Rating: 4.8},
			{Name: "박지영", Specialty: "임대차 분쟁", ResolvedCases: 17, Rating: 4.9},
			{Name: "이준혁", Specialty: "보증금 반환", ResolvedCases: 25, Rating: 4.7},
		},
	},
	{
		ID:             TrafficAccident,
		Name:           "교통사고",
		LawReference:   "교통사고처리특례법",
		ParentCategory: "accident",
		Keywords: []string{
			"교통사고", "자동차", "차량", "충돌", "사고", "보험", "합의금",
			"치료비", "후유장해", "음주운전", "뺑소니", "과실", "보상",
			"입원", "통원",
		},
		BaseWinRate:       78,
		BaseCost:          CostBand{Min: 100, Max: 300},
		PlatformCaseCount: 178,
		Description:       "교통사고 피해자는 치료비, 휴업손해, 위자료, 후유장해 보상 등을 청구할 수 있습니다. 과실 비율 산정이 합의금에 큰 영향을 미칩니다.",
		KeyFindings: []string{
			"과실 비율 산정 및 조정 필요",
			"치료비/휴업손해/위자료 청구",
			"보험사 제시 합의금 적정성 검토",
		},
		SampleExperts: []ExpertRecord{
			{Name: "장현우", Specialty: "교통사고 전문", ResolvedCases: 38, Rating: 4.9},
			{Name: "송민지", Specialty: "보험분쟁", ResolvedCases: 21, Rating: 4.8},
			{Name: "권도윤", Specialty: "손해배상", ResolvedCases: 15, Rating: 4.7},
		},
	},
	{
		ID:             Defamation,
		Name:           "명예훼손/모욕",
		LawReference:   "형법 제307조, 제311조",
		ParentCategory: "criminal",
		Keywords: []string{
			"명예훼손", "모욕", "욕설", "악플", "댓글", "인터넷", "SNS",
			"유튜브", "카페", "게시글", "비방", "허위사실", "루머", "소문",
			"협박",
		},
		BaseWinRate:       60,
		BaseCost:          CostBand{Min: 200, Max: 400},
		PlatformCaseCount: 95,
		Description:       "공연히 사실 또는 허위사실을 적시하여 타인의 명예를 훼손한 경우 형사 처벌 및 민사 손해배상 청구가 가능합니다.",
		KeyFindings: []string{
			"게시물/댓글 캡처 증거 확보",
			"작성자 특정을 위한 정보수집 필요",
			"형사 고소 및 민사 손해배상 병행 가능",
		},
		SampleExperts: []ExpertRecord{
			{Name: "이승기", Specialty: "사이버 범죄", ResolvedCases: 27, Rating: 4.8},
			{Name: "김나영", Specialty: "명예훼손", ResolvedCases: 14, Rating: 4.9},
			{Name: "박서준", Specialty: "형사 고소", ResolvedCases: 20, Rating: 4.7},
		},
	},
	{
		ID:             Fraud,
		Name:           "사기",
		LawReference:   "형법 제347조",
		ParentCategory: "criminal",
		Keywords: []string{
			"사기", "속았", "사취", "편취", "투자", "코인", "주식", "리딩방",
			"피해", "송금", "환불", "거래", "무자본", "다단계", "폰지",
		},
		BaseWinRate:       55,
		BaseCost:          CostBand{Min: 250, Max: 500},
		PlatformCaseCount: 112,
		Description:       "기망행위로 재물을 편취당한 경우 사기죄로 형사 고소가 가능합니다. 피해금 회수를 위해 민사 소송도 병행하는 것이 효과적입니다.",
		KeyFindings: []string{
			"거래 내역 및 송금 증빙 확보",
			"상대방 신원 파악 및 재산 조회",
			"형사 고소와 민사 소송 병행 검토",
		},
		SampleExperts: []ExpertRecord{
			{Name: "정우성", Specialty: "금융사기", ResolvedCases: 19, Rating: 4.9},
			{Name: "한지민", Specialty: "민사소송", ResolvedCases: 24, Rating: 4.8},
			{Name: "유아인", Specialty: "형사고소", ResolvedCases: 11, Rating: 4.7},
		},
	},
}
