package imageprompt

import "fmt"

// Scenario is one row of the fallback table.
type Scenario struct {
	Time        string
	Location    string
	Person      string
	Action      string
	Perspective string
	Mood        string
}

func (s Scenario) Prompt() string {
	return fmt.Sprintf("%s的%s，%s正在%s，%s镜头，%s的氛围，细节丰富，高清摄影",
		s.Time, s.Location, s.Person, s.Action, s.Perspective, s.Mood)
}

// Rows share no vocabulary terms with each other, so consecutive fallbacks
// never collide.
var scenarios = []Scenario{
	{Time: "清晨", Location: "城市公园", Person: "年轻女孩", Action: "晨跑", Perspective: "广角远景", Mood: "清新活力"},
	{Time: "午后", Location: "咖啡馆", Person: "白领", Action: "敲键盘", Perspective: "特写", Mood: "专注宁静"},
	{Time: "黄昏", Location: "海边", Person: "一家三口", Action: "散步", Perspective: "背影", Mood: "温馨"},
	{Time: "深夜", Location: "书房", Person: "中学生", Action: "翻书", Perspective: "俯拍", Mood: "静谧"},
	{Time: "正午", Location: "菜市场", Person: "老人", Action: "挑选蔬菜", Perspective: "平视中景", Mood: "烟火气"},
	{Time: "雨天", Location: "地铁站", Person: "上班族", Action: "撑伞等车", Perspective: "侧面", Mood: "忙碌"},
	{Time: "傍晚", Location: "厨房", Person: "父亲", Action: "做饭", Perspective: "过肩视角", Mood: "温暖"},
	{Time: "冬日", Location: "雪山", Person: "登山者", Action: "攀登", Perspective: "航拍", Mood: "壮阔"},
	{Time: "夏夜", Location: "露营地", Person: "朋友们", Action: "围坐聊天", Perspective: "低角度仰拍", Mood: "轻松愉快"},
	{Time: "春天", Location: "花园", Person: "小孩", Action: "奔跑", Perspective: "全景", Mood: "明亮"},
	{Time: "秋日", Location: "图书馆", Person: "研究生", Action: "记笔记", Perspective: "对角构图", Mood: "沉静"},
	{Time: "凌晨", Location: "写字楼", Person: "创业者", Action: "远眺窗外", Perspective: "剪影", Mood: "坚定"},
}

// Fallbacks yields fallback prompts in table order. A planner run owns one
// sequence so substitutions and padding never reuse a row until the table
// wraps.
type Fallbacks struct {
	next int
}

// Next returns the prompt for the current position and advances.
func (f *Fallbacks) Next() string {
	p := FallbackPrompt(f.next)
	f.next++
	return p
}

// FallbackPrompt returns the deterministic fallback for position seq.
func FallbackPrompt(seq int) string {
	if seq < 0 {
		seq = -seq
	}
	s := scenarios[seq%len(scenarios)]
	if round := seq / len(scenarios); round > 0 {
		s.Mood = fmt.Sprintf("%s（变体 %d）", s.Mood, round+1)
	}
	return s.Prompt()
}
