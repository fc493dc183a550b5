package draft

import "strings"

type recommendation struct {
	Tone      string
	Structure string
}

// stageRecommendations is keyed by DecisionStage.Stage.
var stageRecommendations = map[string]recommendation{
	"认知阶段": {
		Tone:      "通俗易懂、激发好奇，多用生活化的例子引出问题",
		Structure: "现象引入 → 问题拆解 → 核心概念科普 → 延伸思考",
	},
	"考虑阶段": {
		Tone:      "客观理性、有理有据，帮助读者比较和权衡",
		Structure: "需求分析 → 方案对比 → 优劣评估 → 选择建议",
	},
	"决策阶段": {
		Tone:      "坚定可信、给出明确行动指引，消除最后的顾虑",
		Structure: "痛点回顾 → 解决方案 → 实操步骤 → 行动号召",
	},
	"行动阶段": {
		Tone:      "务实细致、手把手指导",
		Structure: "目标说明 → 准备清单 → 分步操作 → 常见问题",
	},
}

var defaultStageRecommendation = recommendation{
	Tone:      "真诚自然、观点清晰",
	Structure: "开篇引入 → 核心观点 → 案例支撑 → 总结升华",
}

type audienceRule struct {
	keywords []string
	tone     string
}

// audienceRules are matched in order against AudienceScene.Audience.
var audienceRules = []audienceRule{
	{keywords: []string{"职场", "白领", "上班族", "打工人"}, tone: "贴近职场语境，节奏紧凑，多给可直接套用的方法"},
	{keywords: []string{"学生", "大学生", "考研", "毕业生"}, tone: "轻松活泼，有代入感，适当使用网络流行语"},
	{keywords: []string{"宝妈", "父母", "家长", "育儿"}, tone: "温暖共情，细节具体，避免制造焦虑"},
	{keywords: []string{"创业", "老板", "管理者", "企业主"}, tone: "视角宏观，数据与案例并重，突出商业价值"},
	{keywords: []string{"技术", "程序员", "开发者", "工程师"}, tone: "严谨准确，逻辑清楚，必要时给出示例"},
	{keywords: []string{"中老年", "退休", "长辈"}, tone: "语句简短平实，重点突出，字里行间透着关怀"},
}

const defaultAudienceTone = "面向大众读者，表达清楚、有温度"

func audienceTone(audience string) string {
	for _, rule := range audienceRules {
		for _, kw := range rule.keywords {
			if strings.Contains(audience, kw) {
				return rule.tone
			}
		}
	}
	return defaultAudienceTone
}

func stageRecommendation(stage string) recommendation {
	if rec, ok := stageRecommendations[strings.TrimSpace(stage)]; ok {
		return rec
	}
	return defaultStageRecommendation
}

// structureTemplates apply in reference mode only.
var structureTemplates = map[string]string{
	"list":       "清单体：开头点明主题，正文用 5 到 8 个编号要点展开，每个要点配一个小例子，结尾做总结。",
	"story":      "故事体：以一个具体人物的经历开篇，通过冲突与转折引出观点，最后回到读者自身。",
	"tutorial":   "教程体：说明适用场景和准备工作，分步骤讲解操作，每步给出注意事项，结尾附常见问题。",
	"opinion":    "观点体：开门见山亮明立场，用三个论据层层递进，回应可能的反对意见，结尾升华。",
	"comparison": "对比体：先介绍对比对象，再从多个维度逐一比较，最后给出不同人群的选择建议。",
	"qa":         "问答体：围绕读者最关心的问题逐个作答，问题之间由浅入深。",
}

var styleDescriptions = map[string]string{
	"professional": "专业严谨",
	"casual":       "轻松口语化",
	"humorous":     "幽默风趣",
	"emotional":    "情感共鸣",
	"storytelling": "故事叙述",
	"informative":  "干货科普",
}

func styleDescription(style string) string {
	if d, ok := styleDescriptions[style]; ok {
		return d
	}
	if style == "" {
		return styleDescriptions["informative"]
	}
	return style
}
