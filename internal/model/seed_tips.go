package model

import "safetytips/internal/entity"

// defaultTips is the stock catalogue loaded by the seeding tool. Some titles
// repeat on purpose; titles are not unique.
var defaultTips = []entity.Tip{
	{Title: "Fire Safety", Content: "Install smoke alarms and regularly check their batteries."},
	{Title: "Road Safety", Content: "Always wear a seatbelt and follow traffic rules."},
	{Title: "Workplace Safety", Content: "Ensure proper use of personal protective equipment (PPE)."},
	{Title: "Electrical Safety", Content: "Do not overload electrical outlets and unplug appliances when not in use."},
	{Title: "Water Safety", Content: "Never leave children unattended near water sources like pools or bathtubs."},
	{Title: "Cybersecurity", Content: "Use strong, unique passwords and enable two-factor authentication."},
	{Title: "Health and Hygiene", Content: "Wash your hands regularly to prevent illness."},
	{Title: "Emergency Preparedness", Content: "Keep a first-aid kit and emergency supplies handy."},
	{Title: "Home Security", Content: "Lock doors and windows when leaving your home or before sleeping."},
	{Title: "Food Safety", Content: "Refrigerate perishable foods promptly and check expiration dates."},
	{Title: "Travel Safety", Content: "Be aware of local laws and emergency contacts when traveling."},
	{Title: "Child Safety", Content: "Teach children about stranger danger and safe behavior."},
	{Title: "Pet Safety", Content: "Ensure pets have access to clean water and a safe environment."},
	{Title: "Outdoor Safety", Content: "Wear sunscreen and stay hydrated when outdoors."},
	{Title: "Medication Safety", Content: "Store medications out of reach of children and only take prescribed doses."},
	{Title: "Alcohol Safety", Content: "Drink responsibly and never drive under the influence."},
	{Title: "Sports Safety", Content: "Use appropriate gear and follow safety guidelines for your activity."},
	{Title: "Disaster Safety", Content: "Learn evacuation routes and emergency procedures for your area."},
	{Title: "Tool Safety", Content: "Use tools only for their intended purpose and wear safety equipment."},
	{Title: "Mental Health Safety", Content: "Take breaks, seek support, and avoid burnout."},
	{Title: "Swimming Safety", Content: "Always swim with a buddy and never swim in dangerous weather conditions."},
	{Title: "Cycling Safety", Content: "Wear a helmet and ensure your bike is in good working condition."},
	{Title: "Camping Safety", Content: "Pack adequate supplies and follow Leave No Trace principles."},
	{Title: "Mountain Safety", Content: "Check weather conditions before hiking and inform someone of your route."},
	{Title: "Skiing Safety", Content: "Wear protective gear, ski within your ability, and follow resort rules."},
	{Title: "Home Fire Safety", Content: "Keep flammable items away from heat sources and never leave cooking unattended."},
	{Title: "Chemical Safety", Content: "Handle chemicals with care and follow safety instructions on labels."},
	{Title: "Social Media Safety", Content: "Limit the personal information shared online and use privacy settings."},
	{Title: "Elderly Safety", Content: "Ensure that homes are fall-proof and install grab bars where necessary."},
	{Title: "Gun Safety", Content: "Store firearms safely in a locked cabinet and keep ammunition separate."},
	{Title: "Childproofing Your Home", Content: "Use safety gates, outlet covers, and cabinet locks to prevent accidents."},
	{Title: "Work from Home Safety", Content: "Set up an ergonomic workstation and take regular breaks."},
	{Title: "Hand Tool Safety", Content: "Inspect tools before use and use the correct tool for the job."},
	{Title: "Sun Protection", Content: "Wear a wide-brimmed hat and sunscreen to protect from harmful UV rays."},
	{Title: "Lifting Safety", Content: "Lift with your legs, not your back, and avoid lifting objects that are too heavy."},
	{Title: "Tornado Safety", Content: "Seek shelter in a basement or interior room away from windows during a tornado."},
	{Title: "Hurricane Safety", Content: "Have an emergency kit ready and know your evacuation routes in advance."},
	{Title: "Ladder Safety", Content: "Ensure the ladder is on a stable surface and never stand on the top rung."},
	{Title: "Snow Safety", Content: "Shovel snow carefully to avoid strain and wear proper footwear to prevent slips."},
	{Title: "Bicycle Helmet Safety", Content: "Always wear a helmet, even on short rides, to protect against head injuries."},
	{Title: "Pet First Aid", Content: "Know basic first aid for pets, such as how to perform CPR and handle injuries."},
	{Title: "Flood Safety", Content: "Do not walk or drive through flooded areas; seek higher ground immediately."},
	{Title: "Ear Protection", Content: "Wear earplugs in loud environments to protect your hearing."},
	{Title: "Workplace Ergonomics", Content: "Adjust your workstation to prevent strain on your eyes, neck, and back."},
	{Title: "Electric Scooter Safety", Content: "Always wear a helmet, follow local laws, and ride responsibly."},
	{Title: "Slips and Falls Prevention", Content: "Keep walkways clear and use non-slip rugs to avoid tripping hazards."},
	{Title: "Emergency Contact List", Content: "Keep an updated list of emergency contacts in your phone and at home."},
	{Title: "Accident Prevention in the Kitchen", Content: "Keep knives sharp, store them safely, and clean up spills immediately."},
	{Title: "Carbon Monoxide Safety", Content: "Install a carbon monoxide detector and ensure proper ventilation in your home."},
	{Title: "Hiking Safety", Content: "Stay on marked trails, carry a map, and be prepared for changes in weather."},
	{Title: "Stress Management", Content: "Practice mindfulness or relaxation techniques to manage stress effectively."},
	{Title: "Hearing Protection", Content: "Wear ear protection when using loud machinery or attending concerts."},
	{Title: "Mental Health Support", Content: "Reach out to a therapist or support group when feeling overwhelmed."},
	{Title: "Bicycle Lock Safety", Content: "Use a strong, reliable lock to secure your bicycle in public places."},
	{Title: "Winter Driving Safety", Content: "Keep an emergency kit in your car and drive cautiously in snowy or icy conditions."},
	{Title: "Noise Pollution Safety", Content: "Limit exposure to loud noises and take regular breaks in quiet spaces."},
	{Title: "Tobacco Safety", Content: "Avoid smoking or using tobacco products to prevent long-term health risks."},
	{Title: "Backpack Safety", Content: "Carry a backpack with both straps and avoid overloading it to prevent back pain."},
	{Title: "Construction Site Safety", Content: "Wear a hard hat, steel-toed boots, and high-visibility clothing on construction sites."},
	{Title: "Watercraft Safety", Content: "Wear a life jacket and never operate a watercraft under the influence of alcohol."},
	{Title: "Sleep Safety", Content: "Create a comfortable sleep environment and avoid screens before bed."},
	{Title: "Safe Socializing", Content: "Practice safe social distancing and wear a mask when necessary."},
	{Title: "Public Transport Safety", Content: "Be aware of your surroundings and keep your belongings close on public transport."},
	{Title: "Grocery Store Safety", Content: "Use sanitizing wipes on shopping carts and avoid touching your face."},
	{Title: "Outdoor Fire Safety", Content: "Ensure campfires are fully extinguished before leaving and avoid dry areas."},
	{Title: "First-Aid Knowledge", Content: "Learn basic first-aid techniques such as CPR, bandaging, and wound care."},
	{Title: "Dog Walking Safety", Content: "Keep dogs on a leash and watch for traffic when walking in busy areas."},
	{Title: "Winter Clothing Safety", Content: "Dress in layers and wear waterproof boots to prevent hypothermia."},
	{Title: "Online Shopping Safety", Content: "Shop on secure websites and avoid using public Wi-Fi for transactions."},
	{Title: "Emergency Escape Plan", Content: "Create a family emergency escape plan and practice it regularly."},
	{Title: "Sunburn Prevention", Content: "Apply sunscreen every 2 hours and wear protective clothing when outdoors."},
	{Title: "Avoiding Distractions While Driving", Content: "Do not use your phone while driving and stay focused on the road."},
	{Title: "Scalpel Safety", Content: "Handle scalpels with care and store them in a safe place away from children."},
	{Title: "Safe Lifting Techniques", Content: "Bend your knees, not your back, and lift with your legs to avoid injury."},
	{Title: "Personal Safety Devices", Content: "Consider carrying a personal alarm or pepper spray for self-defense."},
	{Title: "Disaster Kit Maintenance", Content: "Regularly check and update your disaster preparedness kit with fresh supplies."},
	{Title: "Workplace Fire Safety", Content: "Know the location of fire exits and fire extinguishers in your workplace."},
	{Title: "Cleaning Product Safety", Content: "Store cleaning products in a secure location and use them according to instructions."},
	{Title: "Travel Medication Safety", Content: "Carry necessary medications and keep them in their original packaging when traveling."},
	{Title: "Water Purification Safety", Content: "Use a water filter or boil water in emergencies to prevent waterborne illnesses."},
	{Title: "Jungle Safety", Content: "Wear long sleeves, trousers, and use insect repellent when trekking in the jungle."},
	{Title: "Safe Home Renovation", Content: "Wear protective gear and ensure proper ventilation when renovating at home."},
	{Title: "Carbon Footprint Reduction", Content: "Use energy-efficient appliances and reduce waste to help protect the environment."},
	{Title: "Personal Hygiene Safety", Content: "Avoid sharing personal items like towels or razors to reduce the spread of germs."},
	{Title: "Fire Exit Awareness", Content: "Know your nearest fire exit and evacuation routes in case of emergency."},
	{Title: "Playground Safety", Content: "Ensure playground equipment is safe, stable, and suitable for the child's age."},
	{Title: "Health Screening Safety", Content: "Regularly visit a healthcare provider for check-ups and screenings."},
	{Title: "Sun Exposure Protection", Content: "Limit sun exposure during peak hours (10 a.m. - 4 p.m.) and wear a hat."},
	{Title: "Smoke-Free Home", Content: "Make your home a smoke-free zone to protect your family's health."},
	{Title: "Road Rage Prevention", Content: "Stay calm on the road, avoid aggressive driving, and yield to others when necessary."},
	{Title: "Carbon Footprint Awareness", Content: "Opt for public transportation, cycling, or walking to reduce your carbon footprint."},
	{Title: "Portable Generator Safety", Content: "Use generators outdoors and away from windows to avoid carbon monoxide buildup."},
	{Title: "Recycling Safety", Content: "Ensure that you separate and dispose of hazardous materials properly."},
	{Title: "Swimming Pool Safety", Content: "Ensure pools are fenced and always supervise children around water."},
	{Title: "Eyewear Safety", Content: "Wear safety goggles when using power tools or engaging in hazardous activities."},
	{Title: "Nighttime Walking Safety", Content: "Wear reflective clothing and carry a flashlight if walking at night."},
	{Title: "Building Safety", Content: "Check that fire alarms and sprinklers are functional in any building you visit."},
	{Title: "Public Space Safety", Content: "Stay alert and avoid unfamiliar or poorly lit areas in public spaces."},
	{Title: "Traveling with Kids Safety", Content: "Use appropriate car seats and booster seats based on your child's size and age."},
	{Title: "Stair Safety", Content: "Install handrails and keep stairs well-lit and clutter-free."},
	{Title: "Biking in Traffic Safety", Content: "Always use bike lanes and signal turns to ensure your safety on the road."},
	{Title: "Cooking Oil Safety", Content: "Keep hot cooking oil away from children and never leave it unattended on the stove."},
	{Title: "Heat Exhaustion Prevention", Content: "Stay hydrated and take frequent breaks when working or exercising in hot weather."},
	{Title: "Defensive Driving", Content: "Keep a safe distance, check mirrors often, and be aware of surrounding traffic."},
	{Title: "Personal Device Safety", Content: "Use a password or biometric lock for your personal devices to prevent unauthorized access."},
	{Title: "Earthquake Safety", Content: "Drop, Cover, and Hold On during an earthquake to protect yourself from falling debris."},
	{Title: "Earthquake Safety", Content: "Move away from windows, heavy furniture, and anything that can fall or shatter."},
	{Title: "Earthquake Safety", Content: "After the quake, check for injuries and be prepared for aftershocks."},
	{Title: "Flood Safety", Content: "If there's a flood warning, move to higher ground immediately."},
	{Title: "Flood Safety", Content: "Never drive through flooded streets—just six inches of water can cause loss of control."},
	{Title: "Flood Safety", Content: "Keep a disaster kit with essentials such as food, water, and medications."},
	{Title: "Tornado Safety", Content: "Go to the basement or interior room on the lowest floor if you hear tornado sirens."},
	{Title: "Tornado Safety", Content: "Avoid windows and cover yourself with a heavy blanket or mattress."},
	{Title: "Tornado Safety", Content: "Stay tuned to weather alerts and be prepared to evacuate if necessary."},
	{Title: "Hurricane Safety", Content: "Know your evacuation routes and have an emergency kit ready."},
	{Title: "Hurricane Safety", Content: "Stay indoors during a hurricane and avoid windows and glass doors."},
	{Title: "Hurricane Safety", Content: "After the storm, be cautious of debris and flooding in your area."},
	{Title: "Wildfire Safety", Content: "Create defensible space around your home by clearing away dry brush and flammable materials."},
	{Title: "Wildfire Safety", Content: "Have an evacuation plan and ensure all family members are aware of it."},
	{Title: "Wildfire Safety", Content: "Stay indoors when smoke levels are high to avoid respiratory issues."},
	{Title: "Volcanic Eruption Safety", Content: "If you live near an active volcano, follow evacuation orders immediately."},
	{Title: "Volcanic Eruption Safety", Content: "Wear a mask to protect your lungs from ash inhalation."},
	{Title: "Volcanic Eruption Safety", Content: "Stay indoors to avoid ash falling, and keep windows and doors closed."},
	{Title: "Tsunami Safety", Content: "If you're near the coast and feel an earthquake, evacuate immediately to higher ground."},
	{Title: "Tsunami Safety", Content: "Tsunamis can arrive minutes after an earthquake, so don't wait for an official warning."},
	{Title: "Tsunami Safety", Content: "Avoid returning to the beach until officials declare it safe."},
	{Title: "Landslide Safety", Content: "Avoid building near steep hills or cliffs that are prone to landslides."},
	{Title: "Landslide Safety", Content: "If you notice signs of potential landslides (like cracks in the ground or leaning trees), evacuate immediately."},
	{Title: "Landslide Safety", Content: "After heavy rain, be aware of your surroundings and watch for sudden slope movements."},
	{Title: "Blizzard Safety", Content: "Stay indoors during a blizzard to avoid frostbite or hypothermia."},
	{Title: "Blizzard Safety", Content: "Ensure your car is winterized, and keep blankets, water, and food in your vehicle during winter months."},
	{Title: "Blizzard Safety", Content: "If you must travel, let someone know your route and expected arrival time."},
	{Title: "Extreme Heat Safety", Content: "Stay hydrated and wear light clothing to prevent heat exhaustion."},
	{Title: "Extreme Heat Safety", Content: "Avoid outdoor activities during peak heat hours (10 a.m. to 4 p.m.)."},
	{Title: "Extreme Heat Safety", Content: "Keep an eye on vulnerable people like the elderly, children, and pets."},
	{Title: "Zombie Apocalypse Safety", Content: "Secure your home with barricades, and keep escape routes clear in case of a sudden invasion."},
	{Title: "Zombie Apocalypse Safety", Content: "Always have a weapon or tool for self-defense (like a crowbar or baseball bat) to fend off zombies."},
	{Title: "Zombie Apocalypse Safety", Content: "Establish a trusted group for survival, but be cautious of potential betrayal."},
	{Title: "Alien Invasion Safety", Content: "Know the locations of safe houses or underground bunkers in case of a citywide evacuation."},
	{Title: "Alien Invasion Safety", Content: "If the aliens use mind-control devices, wear protective headgear to block transmissions."},
	{Title: "Alien Invasion Safety", Content: "Gather supplies like food, water, and electronics that can function without modern power grids."},
	{Title: "Robot Uprising Safety", Content: "Disable or disconnect all AI systems in your home and office to prevent robots from gaining control."},
	{Title: "Robot Uprising Safety", Content: "Use EMP devices to disrupt robots' electrical systems and stop their movements."},
	{Title: "Robot Uprising Safety", Content: "Form alliances with other survivors to share resources and defend key locations."},
	{Title: "Vampire Attack Safety", Content: "Carry garlic and silver to ward off vampires and avoid encounters at night."},
	{Title: "Vampire Attack Safety", Content: "Stay in well-lit areas during dusk and dawn, as vampires are weakened by sunlight."},
	{Title: "Vampire Attack Safety", Content: "If bitten, immediately seek help from a healer or vampire hunter to avoid turning."},
	{Title: "Time Travel Paradox Safety", Content: "Avoid altering significant events in history, as even small changes can have catastrophic consequences in the present."},
	{Title: "Time Travel Paradox Safety", Content: "Carry a device that can return you to your original time in case you are stuck in an alternate timeline."},
	{Title: "Time Travel Paradox Safety", Content: "Be cautious of future versions of yourself and any paradoxes that may arise."},
	{Title: "Superhero Battle Safety", Content: "Find shelter away from the battlegrounds, as collateral damage can be widespread during superhero fights."},
	{Title: "Superhero Battle Safety", Content: "Have a 'safe word' to signal when to evacuate quickly."},
	{Title: "Superhero Battle Safety", Content: "If you find yourself near a supervillain's lair, stay out of sight and avoid making contact."},
	{Title: "Giant Monster Attack Safety", Content: "Stay inside sturdy buildings or underground bunkers to avoid destruction from giant monsters."},
	{Title: "Giant Monster Attack Safety", Content: "If possible, track the monster's movements and plan an escape route to a safe zone."},
	{Title: "Giant Monster Attack Safety", Content: "Don't engage the monster; instead, let military forces or specialists handle the situation."},
	{Title: "Nuclear Winter Safety", Content: "Stockpile food, water, and radiation protection gear like lead-lined clothing and masks."},
	{Title: "Nuclear Winter Safety", Content: "Seek shelter underground or in fortified structures that can protect you from radioactive fallout."},
	{Title: "Nuclear Winter Safety", Content: "Only venture outside if absolutely necessary and always wear protective gear to minimize radiation exposure."},
	{Title: "Alien Invasion Safety", Content: "Stay in a group and trust no one unless they have proven their loyalty."},
}
