package prayer

var topicTemplates = map[string]Template{
	TopicHealth: {
		Category: TopicHealth,
		SpecificPrayers: []string{
			"몸과 마음이 온전히 치유되게 하시옵소서",
			"질병을 물리치시고 강건함을 회복시켜 주시옵소서",
			"의료진들에게 지혜를 주시고 올바른 치료가 이루어지게 하시옵소서",
			"고통 가운데서도 주님의 사랑을 느낄 수 있게 하시옵소서",
		},
		Blessings: []string{
			"건강한 몸으로 주님을 섬길 수 있는 은혜",
			"가족들과 함께 기쁨을 나눌 수 있는 시간",
			"회복의 과정을 통해 더욱 성숙해지는 믿음",
		},
		Concerns: []string{
			"치료 과정에서의 어려움과 고통",
			"경제적 부담과 가족들의 걱정",
			"회복에 대한 불안과 두려움",
		},
	},
	TopicJob: {
		Category: TopicJob,
		SpecificPrayers: []string{
			"하나님께서 예비하신 일터로 인도해 주시옵소서",
			"면접과 준비 과정에서 지혜와 능력을 주시옵소서",
			"재능과 은사를 발휘할 수 있는 적합한 직장을 허락하시옵소서",
			"동료들과 상사와의 좋은 관계를 맺을 수 있게 하시옵소서",
		},
		Blessings: []string{
			"안정된 직장에서 성실히 일할 수 있는 기회",
			"경제적 안정과 가족을 돌볼 수 있는 능력",
			"일터에서 하나님의 사랑을 전할 수 있는 기회",
		},
		Concerns: []string{
			"취업 준비 과정의 스트레스와 불안",
			"경쟁과 거절에 대한 두려움",
			"가족의 기대와 경제적 압박",
		},
	},
	TopicFamily: {
		Category: TopicFamily,
		SpecificPrayers: []string{
			"가족 모두가 건강하고 평안하게 하시옵소서",
			"서로 사랑하고 이해하며 화목한 가정이 되게 하시옵소서",
			"각자의 자리에서 하나님의 뜻대로 살아가게 하시옵소서",
			"가족 간의 갈등이 있다면 용서와 화해의 은혜를 주시옵소서",
		},
		Blessings: []string{
			"함께 모여 기쁨을 나누는 소중한 시간",
			"서로를 위해 기도하고 격려하는 관계",
			"하나님 중심의 신앙 가정으로 성장하는 은혜",
		},
		Concerns: []string{
			"가족 구성원들의 건강과 안전",
			"경제적 어려움과 생활의 염려",
			"세대 간의 차이와 소통의 어려움",
		},
	},
	TopicStudy: {
		Category: TopicStudy,
		SpecificPrayers: []string{
			"집중력과 기억력을 주시고 최선을 다할 수 있게 하시옵소서",
			"시험에서 그동안 준비한 것들을 잘 발휘할 수 있게 하시옵소서",
			"결과에 대한 염려보다 과정에서 최선을 다하는 마음을 주시옵소서",
			"좋은 결과든 아쉬운 결과든 하나님의 뜻으로 받아들일 수 있게 하시옵소서",
		},
		Blessings: []string{
			"성실히 공부할 수 있는 건강과 환경",
			"배움을 통해 성장하고 발전하는 기쁨",
			"좋은 결과로 가족들을 기쁘게 할 수 있는 기회",
		},
		Concerns: []string{
			"시험에 대한 부담과 스트레스",
			"경쟁에서 뒤처질 것에 대한 두려움",
			"기대에 부응하지 못할까 하는 걱정",
		},
	},
	TopicMarriage: {
		Category: TopicMarriage,
		SpecificPrayers: []string{
			"하나님께서 예비하신 평생의 동반자를 만나게 하시옵소서",
			"서로를 진실로 사랑하고 존중하는 관계가 되게 하시옵소서",
			"하나님 중심의 신앙 가정을 이루어가게 하시옵소서",
			"결혼 준비 과정에서 지혜롭게 준비할 수 있게 하시옵소서",
		},
		Blessings: []string{
			"서로를 아끼고 사랑하는 소중한 만남",
			"함께 꿈을 이루어가는 아름다운 동행",
			"하나님의 사랑을 나누는 축복된 가정",
		},
		Concerns: []string{
			"올바른 사람을 만날 수 있을지에 대한 불안",
			"관계에서의 갈등과 어려움",
			"결혼에 대한 준비와 책임에 대한 부담",
		},
	},
	TopicGratitude: {
		Category: TopicGratitude,
		SpecificPrayers: []string{
			"주신 모든 은혜에 진심으로 감사드립니다",
			"때로는 당연하게 여겼던 일상의 축복들을 깨닫게 하시옵소서",
			"감사하는 마음으로 더욱 겸손하게 살아가게 하시옵소서",
			"받은 은혜를 다른 이들과 나눌 수 있는 기회를 주시옵소서",
		},
		Blessings: []string{
			"생명과 건강, 그리고 하루하루의 은혜",
			"사랑하는 사람들과 함께하는 소중한 시간",
			"어려움 속에서도 함께하시는 주님의 동행",
		},
		Concerns: []string{
			"감사를 잊고 불평하는 마음",
			"현재의 축복을 당연하게 여기는 태도",
			"어려운 상황에서도 감사할 수 있는 믿음",
		},
	},
}

var generalTemplate = Template{
	Category: TopicGeneral,
	SpecificPrayers: []string{
		"이 마음의 소원을 주님께서 들어주시기를 간구합니다",
		"주님의 뜻이 이루어지는 것이 가장 좋은 길임을 믿습니다",
		"이 과정을 통해 더욱 성숙한 믿음으로 자라가게 하시옵소서",
		"어떤 결과든 감사하는 마음으로 받아들일 수 있게 하시옵소서",
	},
	Blessings: []string{
		"하나님의 사랑 안에서 누리는 평안",
		"어려움 속에서도 변치 않는 하나님의 신실하심",
		"기도할 수 있는 특권과 응답하시는 은혜",
	},
	Concerns: []string{
		"우리의 한계와 부족함",
		"앞으로의 길에 대한 불확실함",
		"하나님의 뜻을 분별하는 것의 어려움",
	},
}

// 어조별 시작 문구
var toneOpenings = map[string]string{
	ToneFormal: "전능하신 하나님 아버지, 주님의 보좌 앞에 경건하게 나아와",
	ToneCasual: "사랑하는 하나님, 편안한 마음으로 주님께 이야기하듯",
	ToneWarm:   "사랑하는 하나님 아버지, 따뜻한 사랑 안에서",
}

// 어조별 마무리 문구
var toneClosings = map[string]string{
	ToneFormal: "이 모든 기도를 우리 주 예수 그리스도의 거룩하신 이름으로 올려드립니다. 아멘.",
	ToneCasual: "예수님의 이름으로 기도해요. 아멘.",
	ToneWarm:   "예수님의 사랑 안에서 기도드립니다. 아멘.",
}

// TemplateFor returns the template matching the analyzed main topic, or the
// general template when no topic matched.
func TemplateFor(analysis TopicAnalysis) Template {
	if tpl, ok := topicTemplates[analysis.MainTopic]; ok {
		return tpl
	}
	return generalTemplate
}
