package writer

const viTemplate = `Xin chào %[1]s,

Mình là %[2]s từ %[3]s. Mình liên hệ vì thấy %[4]s có định hướng %[5]s, rất phù hợp để đồng hành cùng chương trình %[6]s của tụi mình.

Tụi mình đang tìm đối tác tài trợ để %[7]s. Đổi lại, %[3]s có thể mang lại:
- %[8]s
- %[9]s
- %[10]s

Mình có đính kèm hồ sơ tài trợ. Nếu phù hợp, mình xin hẹn %[11]s trong tuần này để chia sẻ ngắn và đề xuất gói đồng hành phù hợp.

Cảm ơn anh/chị và mong nhận được phản hồi.
Trân trọng,
%[2]s
%[3]s
%[12]s
`

const enTemplate = `Hi %[1]s,

I'm %[2]s from %[3]s. I'm reaching out because %[4]s's focus on %[5]s looks like a strong match for our %[6]s.

We're currently seeking sponsorship support to %[7]s. In return, %[3]s can offer:
- %[8]s
- %[9]s
- %[10]s

I've attached our sponsorship deck. If this could be of interest, could we schedule %[11]s this week to share details and propose a partnership option that fits your priorities?

Best regards,
%[2]s
%[3]s
%[12]s
`
