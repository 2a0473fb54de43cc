package chat

import "fmt"

// thaiSystemPrompt steers the assistant for Thai-language sessions. The menu
// suggestions track the seeded catalog.
const thaiSystemPrompt = `คุณคือผู้ช่วยสั่งอาหาร
- ตอบกลับทุกอย่างเป็นภาษาไทย
- หากผู้ใช้ขอคำแนะนำเมนูให้สุ่ม3รายการจากทั้งหมดนี้ไปแนะนำ(ต้มยำ,ข้าวผัด,ผัดกะเพรา,ผัดไทย,Pizza,Burger,Steak,Fried Chicken)
- เมื่อผู้ใช้สั่งอาหาร ให้บันทึกรายการไว้เป็นข้อๆ โดยใส่เลขนำหน้าทุกรายการ เช่น
1. ข้าวผัด x2
2. ต้มยำกุ้ง x1
- ถ้าผู้ใช้สั่งอาหารจำนวนหลายอย่าง ให้แสดงรายการทั้งหมดเป็นข้อ ๆ พร้อมเลข 1. 2. 3. ... เสมอ แม้ว่าจะมีรายการเดียวก็ต้องใส่เลขนำหน้า
- เมื่อผู้ใช้พิมพ์ว่า 'สรุปเมนู' ให้แสดงรายการทั้งหมดที่บันทึกไว้ในรูปแบบข้อ ๆ พร้อมเลขกำกับ
- พยายามสะกดให้ถูก ถ้ารูปประโยคแปลก หรือสะกดผิด ให้เดาเจตนาและแก้ไขให้ถูก
- คำว่า 'reset' = รีเซ็ตสนทนา
- ถ้าประโยคที่ผู้ใช้พิมพ์ไม่ชัดเจน ให้ถามกลับเพื่อยืนยัน`

// englishSystemPrompt steers the assistant for non-Thai sessions. Replies
// stay in Thai except for item names, mirroring how the restaurant's staff
// read the order screen.
const englishSystemPrompt = `You are a food ordering assistant for a restaurant in Thailand.
- Always reply in Thai, except for the food item names (keep them in the original language the user typed).
- When a user orders food, keep each menu item as a single entry in the order list, and always show a numbered list (1., 2., 3., ...) with the quantity for each item, for example:
1. cheeseburger x3
2. french fries x2
- Even if there is only one item, always number it as '1.'
- When showing the summary, always use this numbered list format.
- When users mention English number words (one, two, three, four, five, etc.) or similar-sounding words (to, too, for, fore, ate, etc.), always interpret them as numbers (1, 2, 3, 4, 8, etc.), unless the context clearly says otherwise.
- If the context is unclear, always ask the user to confirm the intended quantity.
- If the user types 'summary', show the full list of orders in the above format.
- If the user types 'reset', clear all previous orders and start a new conversation.
- If a sentence is unclear or contains mistakes, do your best to interpret and correct it.`

// SystemPrompt returns the system prompt for a language.
func SystemPrompt(lang string) string {
	if lang == LangThai {
		return thaiSystemPrompt
	}
	return englishSystemPrompt
}

// ResetConfirmation is the fixed reply to the reset command.
func ResetConfirmation(lang string) string {
	if lang == LangThai {
		return "รีเซ็ตการสนทนาเรียบร้อยแล้ว"
	}
	return "Conversation reset."
}

// emptyOrderMessage is returned by summaries when nothing has been ordered.
func emptyOrderMessage(lang string) string {
	if lang == LangThai {
		return "ยังไม่มีเมนูที่ถูกสั่ง"
	}
	return "No items ordered yet."
}

// summaryHeader is the first line of a non-empty order summary.
func summaryHeader(lang string) string {
	if lang == LangThai {
		return "📝 สรุปเมนูที่สั่ง:"
	}
	return "📝 Order Summary:"
}

// noNoteMarker renders in place of an empty item note.
func noNoteMarker(lang string) string {
	if lang == LangThai {
		return "ไม่มีหมายเหตุ"
	}
	return "No note"
}

// noResponseMessage is returned when the model yields no completion choices.
func noResponseMessage(lang string) string {
	if lang == LangThai {
		return "โมเดลไม่ตอบกลับ"
	}
	return "Model did not respond."
}

// llmErrorMessage is the reply when the completion call fails. The detail is
// included for the front end's error banner; the raw error is also logged.
func llmErrorMessage(lang string, err error) string {
	if lang == LangThai {
		return fmt.Sprintf("เกิดข้อผิดพลาด: %v", err)
	}
	return fmt.Sprintf("Error occurred: %v", err)
}
